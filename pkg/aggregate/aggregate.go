// Package aggregate composes denormalized read views. A view starts from a
// base set of rows and resolves an ordered list of join specifications
// against other tables, each as one batched IN query, so every list endpoint
// shares the same lookup machinery instead of hand-rolling its joins.
package aggregate

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Cardinality states whether a join resolves to at most one related row or a
// sequence of them.
type Cardinality string

const (
	One  Cardinality = "one"
	Many Cardinality = "many"
)

// Doc is a schemaless row, the unit the builder composes.
type Doc = map[string]interface{}

// JoinSpec describes one lookup against another table.
type JoinSpec struct {
	From        string   // table the joined rows come from
	LocalKey    string   // column on the base rows
	ForeignKey  string   // column on From matched against LocalKey
	As          string   // key the joined rows are attached under
	Fields      []string // projected columns; empty selects everything
	Order       string   // sort directive for the joined rows; Many joins keep this order per group
	Cardinality Cardinality
	Joins       []JoinSpec // nested lookups resolved on the joined rows first
}

type Builder struct {
	db *gorm.DB
}

func NewBuilder(db *gorm.DB) *Builder { return &Builder{db: db} }

// Resolve attaches every join in order to the base rows in place.
func (b *Builder) Resolve(ctx context.Context, base []Doc, joins []JoinSpec) error {
	for _, spec := range joins {
		if err := b.resolveJoin(ctx, base, spec); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) resolveJoin(ctx context.Context, base []Doc, spec JoinSpec) error {
	keys := CollectKeys(base, spec.LocalKey)
	joined := make([]Doc, 0)
	if len(keys) > 0 {
		tx := b.db.WithContext(ctx).Table(spec.From)
		if len(spec.Fields) > 0 {
			tx = tx.Select(withForeignKey(spec.Fields, spec.ForeignKey))
		}
		if spec.Order != "" {
			tx = tx.Order(spec.Order)
		}
		if err := tx.Where(spec.ForeignKey+" IN ?", keys).Find(&joined).Error; err != nil {
			return errors.Wrapf(err, "aggregate: lookup from %s failed", spec.From)
		}
	}
	if len(spec.Joins) > 0 {
		if err := b.Resolve(ctx, joined, spec.Joins); err != nil {
			return err
		}
	}
	Attach(base, joined, spec)
	stripInjectedKey(joined, spec)
	return nil
}

// stripInjectedKey drops the foreign key from the joined rows when the
// caller's projection did not ask for it; the builder only selected it so
// Attach could group.
func stripInjectedKey(joined []Doc, spec JoinSpec) {
	if len(spec.Fields) == 0 {
		return
	}
	for _, f := range spec.Fields {
		if f == spec.ForeignKey {
			return
		}
	}
	for _, d := range joined {
		delete(d, spec.ForeignKey)
	}
}

// CollectKeys returns the distinct non-nil local key values of docs.
func CollectKeys(docs []Doc, key string) []interface{} {
	seen := make(map[string]struct{}, len(docs))
	keys := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		v, ok := doc[key]
		if !ok || v == nil {
			continue
		}
		k := keyString(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, v)
	}
	return keys
}

// Attach groups the joined rows by the spec's foreign key and hangs them off
// each base row under spec.As. Cardinality One collapses the group to its
// single element, or nil when absent; Many always attaches a list.
func Attach(base, joined []Doc, spec JoinSpec) {
	grouped := make(map[string][]Doc, len(joined))
	for _, d := range joined {
		k := keyString(d[spec.ForeignKey])
		grouped[k] = append(grouped[k], d)
	}
	for _, doc := range base {
		matches := grouped[keyString(doc[spec.LocalKey])]
		if spec.Cardinality == One {
			if len(matches) > 0 {
				doc[spec.As] = matches[0]
			} else {
				doc[spec.As] = nil
			}
			continue
		}
		if matches == nil {
			matches = []Doc{}
		}
		doc[spec.As] = matches
	}
}

// keyString normalizes join key values so numeric, string and []byte columns
// compare equal regardless of how the driver scanned them.
func keyString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}

func withForeignKey(fields []string, fk string) []string {
	for _, f := range fields {
		if f == fk {
			return fields
		}
	}
	return append(append([]string{}, fields...), fk)
}
