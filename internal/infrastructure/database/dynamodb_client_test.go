package database

import (
	"testing"

	"github.com/alexferreiraaf/osmaster/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
)

func TestTableDefinitions(t *testing.T) {
	cfg := config.Default().Store
	cfg.OrdersTable = "os_orders"

	defs := TableDefinitions(cfg)
	if len(defs) != 3 {
		t.Fatalf("expected 3 tables, got %d", len(defs))
	}

	orders := defs[0]
	if aws.ToString(orders.TableName) != "os_orders" {
		t.Fatalf("unexpected orders table: %s", aws.ToString(orders.TableName))
	}
	if len(orders.GlobalSecondaryIndexes) != 1 || aws.ToString(orders.GlobalSecondaryIndexes[0].IndexName) != "assigned_to-index" {
		t.Fatalf("expected assigned_to-index on orders")
	}
	if aws.ToString(defs[1].KeySchema[0].AttributeName) != "name_key" {
		t.Fatalf("employees must be keyed by name_key")
	}
	if aws.ToString(defs[2].KeySchema[0].AttributeName) != "email" {
		t.Fatalf("users must be keyed by email")
	}
}
