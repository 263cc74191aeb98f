package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrderUpdate(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("checklist keys are set individually", func(t *testing.T) {
		expr, err := buildOrderUpdate(entities.OrderPatch{
			Checklist: map[string]bool{entities.ChecklistPreco: true, entities.ChecklistFiscal: false},
			UpdatedBy: "Ana",
			UpdatedAt: now,
		})
		require.NoError(t, err)

		assert.Equal(t,
			"SET #checklist.#checklist_preco = :checklist_preco, #checklist.#checklist_fiscal = :checklist_fiscal, "+
				"#last_updated_by = :last_updated_by, #updated_at = :updated_at",
			expr.update)
		assert.Equal(t, "attribute_exists(#id)", expr.condition)
		assert.Equal(t, "preco", expr.names["#checklist_preco"])
		assert.Equal(t, &types.AttributeValueMemberBOOL{Value: true}, expr.values[":checklist_preco"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "2025-05-01T10:00:00Z"}, expr.values[":updated_at"])
		assert.NotContains(t, expr.update, "#checklist =")
	})

	t.Run("unassign removes the index key", func(t *testing.T) {
		empty := ""
		expected := "Carlos"
		expr, err := buildOrderUpdate(entities.OrderPatch{
			AssignedTo:       &empty,
			ExpectAssignedTo: &expected,
			UpdatedBy:        "Ana",
			UpdatedAt:        now,
		})
		require.NoError(t, err)

		assert.True(t, strings.HasSuffix(expr.update, "REMOVE #assigned_to"), expr.update)
		assert.NotContains(t, expr.values, ":assigned_to")
		assert.Equal(t, "attribute_exists(#id) AND #assigned_to = :expect_assigned_to", expr.condition)
		assert.Equal(t, &types.AttributeValueMemberS{Value: "Carlos"}, expr.values[":expect_assigned_to"])
	})

	t.Run("expect unassigned", func(t *testing.T) {
		empty := ""
		name := "Carlos"
		expr, err := buildOrderUpdate(entities.OrderPatch{AssignedTo: &name, ExpectAssignedTo: &empty, UpdatedAt: now})
		require.NoError(t, err)

		assert.Contains(t, expr.update, "#assigned_to = :assigned_to")
		assert.Contains(t, expr.condition, "attribute_not_exists(#assigned_to)")
	})

	t.Run("status precondition", func(t *testing.T) {
		to := entities.OrderStatusEmAndamento
		from := entities.OrderStatusPendente
		expr, err := buildOrderUpdate(entities.OrderPatch{Status: &to, ExpectStatus: &from, UpdatedAt: now})
		require.NoError(t, err)

		assert.Equal(t, "attribute_exists(#id) AND #status = :expect_status", expr.condition)
		assert.Equal(t, &types.AttributeValueMemberS{Value: "Em Andamento"}, expr.values[":status"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "Pendente"}, expr.values[":expect_status"])
	})

	t.Run("attachments in stable order", func(t *testing.T) {
		cert := entities.Attachment{FileName: "a.pfx", UploadStatus: entities.UploadStatusUploading}
		img := entities.Attachment{FileName: "b.png", URL: "https://x/b.png", UploadStatus: entities.UploadStatusUploaded}
		expr, err := buildOrderUpdate(entities.OrderPatch{Certificate: &cert, Image: &img, UpdatedAt: now})
		require.NoError(t, err)

		assert.Less(t, strings.Index(expr.update, "#certificate"), strings.Index(expr.update, "#image"))

		m, ok := expr.values[":image"].(*types.AttributeValueMemberM)
		require.True(t, ok)
		var got attachmentItem
		require.NoError(t, attributevalue.UnmarshalMap(m.Value, &got))
		assert.Equal(t, toAttachmentItem(img), got)

		certM := expr.values[":certificate"].(*types.AttributeValueMemberM)
		assert.NotContains(t, certM.Value, "url")
	})

	t.Run("details replace every form field", func(t *testing.T) {
		d := entities.OrderDetails{Client: "Maria", City: "Niterói", State: "RJ", Service: "Suporte", Priority: entities.PriorityAlta}
		expr, err := buildOrderUpdate(entities.OrderPatch{Details: &d, UpdatedAt: now})
		require.NoError(t, err)

		for _, attr := range []string{"client", "document", "contact", "city", "state", "service", "priority", "ifood_email", "remote_code"} {
			assert.Contains(t, expr.update, "#"+attr+" = :"+attr)
		}
		assert.Equal(t, &types.AttributeValueMemberS{Value: "Alta"}, expr.values[":priority"])
	})
}

func TestOrderItemMapping(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 123456789, time.UTC)
	o := entities.Order{
		ID: "OS-2025-0000ABCD",
		OrderDetails: entities.OrderDetails{
			Client: "Maria", City: "Rio de Janeiro", State: "RJ", Service: "Instalação",
			Priority: entities.PriorityMedia, OrderNow: entities.Nao, Mobile: entities.Sim, IfoodIntegration: entities.Nao,
		},
		Status:        entities.OrderStatusPendente,
		Checklist:     entities.Checklist{Bairros: true},
		Image:         &entities.Attachment{FileName: "f.png", UploadStatus: entities.UploadStatusFailed, UploadError: "denied"},
		Date:          now,
		LastUpdatedBy: "Ana",
		UpdatedAt:     now,
	}

	av, err := attributevalue.MarshalMap(toOrderItem(o))
	require.NoError(t, err)

	assert.NotContains(t, av, "assigned_to", "unassigned orders must stay out of the assignee index")
	assert.NotContains(t, av, "certificate")
	checklist, ok := av["checklist"].(*types.AttributeValueMemberM)
	require.True(t, ok)
	assert.Len(t, checklist.Value, len(entities.ChecklistKeys))

	got, err := unmarshalOrder(av)
	require.NoError(t, err)
	assert.Equal(t, o, got)
}
