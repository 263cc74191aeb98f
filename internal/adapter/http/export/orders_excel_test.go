package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestOrdersWorkbook(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	orders := []entities.Order{
		{
			ID:            "OS-2025-0000000B",
			OrderDetails:  entities.OrderDetails{Client: "Maria", City: "Rio de Janeiro", State: "RJ", Service: "Instalação", Priority: entities.PriorityMedia},
			AssignedTo:    "Carlos",
			Status:        entities.OrderStatusEmAndamento,
			Checklist:     entities.Checklist{Preco: true, Fiscal: true},
			Date:          now,
			LastUpdatedBy: "Ana",
			UpdatedAt:     now,
		},
		{
			ID:           "OS-2025-0000000A",
			OrderDetails: entities.OrderDetails{Client: "João", Service: "Suporte", Priority: entities.PriorityUrgente},
			Status:       entities.OrderStatusPendente,
			Date:         now.Add(-time.Hour),
		},
	}

	data, err := OrdersWorkbook(orders)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, OrderHeader, rows[0])

	assert.Equal(t, "OS-2025-0000000B", rows[1][0])
	assert.Equal(t, "Maria", rows[1][1])
	assert.Equal(t, "Em Andamento", rows[1][8])
	assert.Equal(t, "Carlos", rows[1][9])
	assert.Equal(t, "2/7", rows[1][10])

	assert.Equal(t, "OS-2025-0000000A", rows[2][0])
	assert.Equal(t, "Urgente", rows[2][7])
	assert.Equal(t, "", rows[2][9])
}

func TestOrdersWorkbook_Empty(t *testing.T) {
	data, err := OrdersWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
