package usecases

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/domain/repositories"
	"invest-portal.backend/internal/metrics"
	"invest-portal.backend/pkg/utils"
)

// Unmatched-row reasons reported back to the uploader
const (
	ReasonNoMatch     = "no match"
	ReasonAmbiguous   = "ambiguous"
	ReasonInvalidType = "invalid type"
)

var csvHeader = []string{"investorName", "type", "period", "year"}

// StatementUsecase imports statement uploads and serves statement listings
type StatementUsecase struct {
	investorRepo  repositories.InvestorRepository
	statementRepo repositories.StatementRepository
}

// NewStatementUsecase creates a new statement usecase
func NewStatementUsecase(
	investorRepo repositories.InvestorRepository,
	statementRepo repositories.StatementRepository,
) *StatementUsecase {
	return &StatementUsecase{
		investorRepo:  investorRepo,
		statementRepo: statementRepo,
	}
}

// ParseRows reads a statement upload CSV. The header must carry the columns
// investorName,type,period,year (order fixed, names case-insensitive). A
// malformed file fails the whole import; per-row matching problems do not.
func (u *StatementUsecase) ParseRows(r io.Reader) ([]entities.StatementRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domainerrors.BadRequest("empty upload")
	}
	if len(header) < len(csvHeader) {
		return nil, domainerrors.BadRequest("missing columns, expected investorName,type,period,year")
	}
	for i, want := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, domainerrors.BadRequest(fmt.Sprintf("unexpected column %q, expected %q", header[i], want))
		}
	}

	var rows []entities.StatementRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domainerrors.BadRequest(fmt.Sprintf("malformed csv at line %d", line))
		}
		year, err := strconv.Atoi(strings.TrimSpace(record[3]))
		if err != nil {
			return nil, domainerrors.BadRequest(fmt.Sprintf("invalid year at line %d", line))
		}
		rows = append(rows, entities.StatementRow{
			InvestorName: strings.TrimSpace(record[0]),
			Type:         strings.ToLower(strings.TrimSpace(record[1])),
			Period:       strings.TrimSpace(record[2]),
			Year:         year,
		})
	}
	return rows, nil
}

// MatchAndAttach matches upload rows to investor profiles by normalized name
// and creates a statement record per unique match. Zero matches and ambiguous
// names land in the unmatched list with a reason; rows are never dropped.
func (u *StatementUsecase) MatchAndAttach(ctx context.Context, rows []entities.StatementRow, uploadedByAdminID string) (*entities.ImportResult, error) {
	result := &entities.ImportResult{
		Matched:   []*entities.Statement{},
		Unmatched: []entities.UnmatchedRow{},
	}

	for _, row := range rows {
		if !entities.ValidStatementType(row.Type) {
			result.Unmatched = append(result.Unmatched, entities.UnmatchedRow{Row: row, Reason: ReasonInvalidType})
			continue
		}

		name := entities.NormalizeInvestorName(row.InvestorName)
		profiles, err := u.investorRepo.FindByNormalizedName(ctx, name)
		if err != nil {
			return nil, err
		}

		switch len(profiles) {
		case 0:
			result.Unmatched = append(result.Unmatched, entities.UnmatchedRow{Row: row, Reason: ReasonNoMatch})
		case 1:
			now := time.Now()
			statement := &entities.Statement{
				ID:         utils.GenerateUUIDv7(),
				InvestorID: profiles[0].ID,
				Type:       entities.StatementType(row.Type),
				Period:     row.Period,
				Year:       row.Year,
				FilePath:   statementFilePath(name, row),
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if uploadedByAdminID != "" {
				statement.UploadedByAdminID = null.StringFrom(uploadedByAdminID)
			}
			if err := u.statementRepo.Create(ctx, statement); err != nil {
				return nil, err
			}
			result.Matched = append(result.Matched, statement)
		default:
			// two profiles share the name: report, never guess
			result.Unmatched = append(result.Unmatched, entities.UnmatchedRow{Row: row, Reason: ReasonAmbiguous})
		}
	}

	metrics.StatementRowsImported.WithLabelValues("matched").Add(float64(len(result.Matched)))
	metrics.StatementRowsImported.WithLabelValues("unmatched").Add(float64(len(result.Unmatched)))
	return result, nil
}

// Import parses and matches in one call, for the upload handler
func (u *StatementUsecase) Import(ctx context.Context, r io.Reader, uploadedByAdminID string) (*entities.ImportResult, error) {
	rows, err := u.ParseRows(r)
	if err != nil {
		return nil, err
	}
	return u.MatchAndAttach(ctx, rows, uploadedByAdminID)
}

// ListForInvestor lists the statements of one investor, newest first
func (u *StatementUsecase) ListForInvestor(ctx context.Context, investorID uuid.UUID) ([]*entities.Statement, error) {
	return u.statementRepo.ListByInvestor(ctx, investorID)
}

// ListAll lists every statement record for the admin dashboard
func (u *StatementUsecase) ListAll(ctx context.Context) ([]*entities.Statement, error) {
	return u.statementRepo.List(ctx)
}

// Delete removes a statement record
func (u *StatementUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.statementRepo.SoftDelete(ctx, id)
}

// statementFilePath builds the deterministic path a rendered PDF lands at,
// relative to the statements directory.
func statementFilePath(normalizedName string, row entities.StatementRow) string {
	slug := strings.ReplaceAll(normalizedName, " ", "-")
	file := fmt.Sprintf("%s-%s-%s.pdf", row.Type, strings.ToLower(row.Period), slug)
	return path.Join(strconv.Itoa(row.Year), file)
}
