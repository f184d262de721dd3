package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// StatementType is the reporting cadence of a statement
type StatementType string

const (
	StatementMonthly   StatementType = "monthly"
	StatementQuarterly StatementType = "quarterly"
	StatementAnnual    StatementType = "annual"
)

// ValidStatementType reports whether t is a known cadence tag.
func ValidStatementType(t string) bool {
	switch StatementType(t) {
	case StatementMonthly, StatementQuarterly, StatementAnnual:
		return true
	}
	return false
}

// Statement references a generated PDF for one investor and period
type Statement struct {
	ID                uuid.UUID     `json:"id"`
	InvestorID        uuid.UUID     `json:"investorId"`
	Type              StatementType `json:"type"`
	Period            string        `json:"period"`
	Year              int           `json:"year"`
	FilePath          string        `json:"filePath"`
	UploadedByAdminID null.String   `json:"uploadedByAdminId,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

// StatementRow is one spreadsheet row of a statement upload
type StatementRow struct {
	InvestorName string `json:"investorName"`
	Type         string `json:"type"`
	Period       string `json:"period"`
	Year         int    `json:"year"`
}

// UnmatchedRow is a row the matcher could not attach, with the reason it is
// reported back to the uploader instead of being dropped.
type UnmatchedRow struct {
	Row    StatementRow `json:"row"`
	Reason string       `json:"reason"`
}

// ImportResult is the outcome of a statement upload
type ImportResult struct {
	Matched   []*Statement   `json:"matched"`
	Unmatched []UnmatchedRow `json:"unmatched"`
}
