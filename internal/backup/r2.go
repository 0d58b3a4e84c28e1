package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"centring-backend/internal/config"
	"centring-backend/internal/directory"
)

// Scheduler periodically snapshots the phone directory to an S3-compatible
// bucket (Cloudflare R2). The directory is the only state this service
// owns; records live in the external store and are backed up there.
type Scheduler struct {
	cfg   *config.Config
	store directory.Store

	mu       sync.Mutex
	ticker   *time.Ticker
	stopChan chan bool
}

func NewScheduler(cfg *config.Config, store directory.Store) *Scheduler {
	return &Scheduler{cfg: cfg, store: store}
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != nil {
		return // Already running
	}

	interval := time.Duration(s.cfg.Backup.IntervalHours) * time.Hour
	s.ticker = time.NewTicker(interval)
	s.stopChan = make(chan bool)

	go func() {
		// Run first backup immediately
		log.Println("[R2 Backup] Starting directory backup scheduler")
		s.run()

		for {
			select {
			case <-s.ticker.C:
				s.run()
			case <-s.stopChan:
				log.Println("[R2 Backup] Scheduler stopped")
				return
			}
		}
	}()

	log.Printf("[R2 Backup] Scheduler started (interval: %v)", interval)
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != nil {
		s.ticker.Stop()
		s.stopChan <- true
		s.ticker = nil
	}
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	entries, err := s.store.Load(ctx)
	if err != nil {
		log.Printf("[R2 Backup] Failed to read directory: %v", err)
		return
	}

	data, err := json.Marshal(entries)
	if err != nil {
		log.Printf("[R2 Backup] Failed to encode directory: %v", err)
		return
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.Backup.AccessKey,
			s.cfg.Backup.SecretKey,
			"",
		)),
		awsconfig.WithRegion(s.cfg.Backup.Region),
	)
	if err != nil {
		log.Printf("[R2 Backup] Failed to configure R2 client: %v", err)
		return
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.cfg.Backup.Endpoint)
	})

	backupKey := fmt.Sprintf("directory/%s_%s.json",
		s.cfg.Directory.StorageKey, time.Now().Format("20060102_150405"))

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Backup.Bucket),
		Key:         aws.String(backupKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		log.Printf("[R2 Backup] Failed to upload: %v", err)
		return
	}

	log.Printf("[R2 Backup] Success: %s (%d entries)", backupKey, len(entries))
}
