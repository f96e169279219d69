package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/apperror"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/utils"
	"github.com/xuri/excelize/v2"
)

const depositSheet = "Deposits"

var depositHeader = []interface{}{
	"ID", "Profile ID", "Username", "Email", "Amount", "UTR", "Status", "Created At", "Approved At",
}

// ExportWorkbook renders every deposit, newest first, as an XLSX workbook.
func (s *DepositService) ExportWorkbook(ctx context.Context) (*bytes.Buffer, error) {
	deposits, err := s.List(ctx, "")
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", depositSheet); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to build workbook")
	}
	if err := f.SetSheetRow(depositSheet, "A1", &depositHeader); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to build workbook")
	}

	for i, d := range deposits {
		approved := ""
		if d.ApprovedAt != nil {
			approved = utils.FormatDisplayTime(*d.ApprovedAt, s.loc)
		}
		created := d.CreatedAtDisplay
		if created == "" {
			created = utils.FormatDisplayTime(d.CreatedAt, s.loc)
		}
		row := []interface{}{
			d.ID, d.ProfileID, d.Username, d.Email, d.Amount, d.UTR, d.Status, created, approved,
		}
		if err := f.SetSheetRow(depositSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to build workbook")
		}
	}
	if err := f.SetColWidth(depositSheet, "A", "I", 22); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to build workbook")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to write workbook")
	}
	return buf, nil
}
