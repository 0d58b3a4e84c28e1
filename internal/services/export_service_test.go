package services

import (
	"strings"
	"testing"

	"centring-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVHeaderAndRowCount(t *testing.T) {
	svc := NewExportService()

	out := svc.CSV([]*models.TransactionRecord{
		{Date: "2025-05-14", Name: "Raj", PhoneNo: "9876543210", Product: "Cement", PaidAmount: 500, PaidStatus: "Paid", Returned: false, Notes: "ok"},
		{Date: "2025-05-20", Name: "Kumar", PhoneNo: "8765432109", Product: "Jack", PaidAmount: 250.5, PaidStatus: "Pending", Returned: true},
	})

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	assert.Equal(t, "Date,Name,Phone Number,Products,Amount,Paid,Returned,Notes", lines[0])
	assert.Equal(t, "14/05/2025,Raj,9876543210,Cement,500,Paid,No,ok", lines[1])
	assert.Equal(t, "20/05/2025,Kumar,8765432109,Jack,250.5,Pending,Yes,", lines[2])
}

func TestCSVDoesNotEscapeEmbeddedCommas(t *testing.T) {
	svc := NewExportService()

	out := svc.CSV([]*models.TransactionRecord{
		{Date: "2025-05-14", Name: "Raj", PhoneNo: "0", Product: "Cement", PaidStatus: "Pending", Notes: "urgent, call first"},
	})

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 2)
	// the embedded comma splits the row into an extra column
	assert.Len(t, strings.Split(lines[1], ","), 9)
}

func TestCSVEmptyCollectionIsHeaderOnly(t *testing.T) {
	svc := NewExportService()

	out := svc.CSV(nil)
	assert.Equal(t, "Date,Name,Phone Number,Products,Amount,Paid,Returned,Notes\n", string(out))
}

func TestPDFRendersDocument(t *testing.T) {
	svc := NewExportService()

	out, err := svc.PDF([]*models.TransactionRecord{
		{Date: "2025-05-14", Name: "Raj", PhoneNo: "9876543210", Product: "Cement", PaidAmount: 500, PaidStatus: "Paid"},
	}, "Monthly Statement")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}
