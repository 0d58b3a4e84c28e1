package models

import "regexp"

// directoryPhoneRe is the strict rule for display-valid directory entries:
// exactly 10 digits, not starting with 0. The placeholder "0" used by
// transaction records never qualifies.
var directoryPhoneRe = regexp.MustCompile(`^[1-9]\d{9}$`)

// DirectoryEntry is a cached name/phone pair, independent of any
// transaction record. The full set persists as one serialized array
// under a single storage key.
type DirectoryEntry struct {
	Name    string `json:"name"`
	PhoneNo string `json:"phoneNo"`
}

// ValidDirectoryPhone reports whether phone satisfies the strict
// 10-digit-not-starting-with-0 rule.
func ValidDirectoryPhone(phone string) bool {
	return directoryPhoneRe.MatchString(phone)
}
