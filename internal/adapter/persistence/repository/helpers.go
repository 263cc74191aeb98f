package repository

import (
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func str(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

type updateExpression struct {
	update    string
	condition string
	names     map[string]string
	values    map[string]types.AttributeValue
}

// updateBuilder assembles SET/REMOVE clauses and an AND-ed condition.
// Placeholders are derived from attribute names, so each attribute may be
// touched once per expression.
type updateBuilder struct {
	sets       []string
	removes    []string
	conditions []string
	names      map[string]string
	values     map[string]types.AttributeValue
}

func newUpdateBuilder() *updateBuilder {
	return &updateBuilder{names: map[string]string{}, values: map[string]types.AttributeValue{}}
}

func (b *updateBuilder) set(attr string, v types.AttributeValue) {
	b.names["#"+attr] = attr
	b.values[":"+attr] = v
	b.sets = append(b.sets, "#"+attr+" = :"+attr)
}

// setNested updates one key of a map attribute without touching its siblings.
func (b *updateBuilder) setNested(attr, key string, v types.AttributeValue) {
	b.names["#"+attr] = attr
	b.names["#"+attr+"_"+key] = key
	b.values[":"+attr+"_"+key] = v
	b.sets = append(b.sets, "#"+attr+".#"+attr+"_"+key+" = :"+attr+"_"+key)
}

func (b *updateBuilder) remove(attr string) {
	b.names["#"+attr] = attr
	b.removes = append(b.removes, "#"+attr)
}

func (b *updateBuilder) condition(expr string, names map[string]string, values map[string]types.AttributeValue) {
	b.conditions = append(b.conditions, expr)
	b.names = mergeNames(b.names, names)
	for k, v := range values {
		b.values[k] = v
	}
}

func (b *updateBuilder) build() updateExpression {
	var parts []string
	if len(b.sets) > 0 {
		parts = append(parts, "SET "+strings.Join(b.sets, ", "))
	}
	if len(b.removes) > 0 {
		parts = append(parts, "REMOVE "+strings.Join(b.removes, ", "))
	}
	out := updateExpression{
		update:    strings.Join(parts, " "),
		condition: strings.Join(b.conditions, " AND "),
		names:     b.names,
		values:    b.values,
	}
	if len(out.values) == 0 {
		out.values = nil
	}
	return out
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
