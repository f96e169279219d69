package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportWorkbook(t *testing.T) {
	ctx := context.Background()
	s := newDepositService(t, nil)

	d, err := s.Submit(ctx, DepositRequest{ProfileID: "p1", Amount: amount(99.5), UTR: "UTR1", Username: "ravi"})
	require.NoError(t, err)
	_, err = s.UpdateStatus(ctx, d.ID, "approved")
	require.NoError(t, err)

	buf, err := s.ExportWorkbook(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(depositSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Profile ID", rows[0][1])
	assert.Equal(t, d.ID, rows[1][0])
	assert.Equal(t, "ravi", rows[1][2])
	assert.Equal(t, "approved", rows[1][6])
	assert.Equal(t, "17/10/2026, 3:00:00 pm", rows[1][8])
}
