package section

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrItemNotFound = errors.New("section item not found")

// FieldType drives coercion between wire payloads and stored values.
type FieldType int

const (
	Text FieldType = iota
	Date
	JSONList
	Bool
	Int
)

// Field describes one column of a section table and its wire representation.
// Column doubles as the canonical wire name unless Wire overrides it; Aliases
// list the additional payload keys the products send for the same field
// (RecruAI and CVAI disagree on casing, e.g. jobTitle vs job_title).
type Field struct {
	Column  string
	Wire    string
	Aliases []string
	Type    FieldType
}

func (f Field) wireName() string {
	if f.Wire != "" {
		return f.Wire
	}
	return f.Column
}

// Tag distinguishes two logical resource kinds sharing one table, e.g.
// projects and portfolio items both live in the projects table keyed by the
// status column. Items never match more than one tag value.
type Tag struct {
	Column string
	Value  string
}

// Schema is the full per-resource descriptor consumed by the generic CRUD
// registrar, the generic repository and the profile aggregator. Handlers are
// parameterized by Schema alone; there is no kind-specific control flow
// anywhere downstream of it.
type Schema struct {
	// Resource is the URL path segment; Aliases are additional paths served
	// by the same handlers.
	Resource string
	Aliases  []string

	Table     string
	IDKey     string
	ListKey   string
	SingleKey string
	// Label appears in response messages ("Award created successfully").
	Label string

	Fields []Field

	// OrderBy is the resource's canonical ordering, an SQL order expression.
	OrderBy string

	Tag *Tag

	// Derive, when set, runs after payload application to maintain fields
	// computed from others (experience keeps current_job in sync with
	// end_date). created distinguishes Build from ApplyUpdate.
	Derive func(item *Item, payload map[string]any, created bool)
}

// Item is one stored section row. Values maps column names to typed values:
// Text and JSONList fields hold *string, Date fields *time.Time, Bool fields
// bool, Int fields *int64. A nil entry is a stored null.
type Item struct {
	ID        int64
	OwnerID   uuid.UUID
	Values    map[string]any
	CreatedAt time.Time
}

func NewItem(ownerID uuid.UUID) *Item {
	return &Item{OwnerID: ownerID, Values: make(map[string]any)}
}

// lookup resolves a payload value for a field, trying the canonical wire
// name, the column name, then every alias.
func (s *Schema) lookup(payload map[string]any, f Field) (any, bool) {
	if v, ok := payload[f.wireName()]; ok {
		return v, true
	}
	if v, ok := payload[f.Column]; ok {
		return v, true
	}
	for _, alias := range f.Aliases {
		if v, ok := payload[alias]; ok {
			return v, true
		}
	}
	return nil, false
}

// Build constructs a new item for owner from a wire payload. Fields absent
// from the payload are stored as null.
func (s *Schema) Build(ownerID uuid.UUID, payload map[string]any) *Item {
	item := NewItem(ownerID)
	for _, f := range s.Fields {
		raw, _ := s.lookup(payload, f)
		item.Values[f.Column] = coerceValue(f.Type, raw)
	}
	if s.Derive != nil {
		s.Derive(item, payload, true)
	}
	return item
}

// ApplyUpdate mutates item in place with partial-update semantics: a field
// absent from the payload keeps its stored value, a field present with an
// empty string becomes an explicit null.
func (s *Schema) ApplyUpdate(item *Item, payload map[string]any) {
	for _, f := range s.Fields {
		raw, present := s.lookup(payload, f)
		if !present {
			continue
		}
		item.Values[f.Column] = coerceValue(f.Type, raw)
	}
	if s.Derive != nil {
		s.Derive(item, payload, false)
	}
}

// Serialize renders a stored item in the resource's wire vocabulary.
func (s *Schema) Serialize(item *Item) map[string]any {
	out := map[string]any{s.IDKey: item.ID}
	for _, f := range s.Fields {
		out[f.wireName()] = wireValue(f.Type, item.Values[f.Column])
	}
	return out
}

func coerceValue(t FieldType, raw any) any {
	switch t {
	case Date:
		if raw == nil {
			return (*time.Time)(nil)
		}
		if str, ok := raw.(string); ok {
			return ParseDate(str)
		}
		if tm, ok := raw.(time.Time); ok {
			return &tm
		}
		return (*time.Time)(nil)
	case JSONList:
		return DumpTechnologies(toStringSlice(raw))
	case Bool:
		b, _ := raw.(bool)
		return b
	case Int:
		return toIntPtr(raw)
	default:
		if raw == nil {
			return (*string)(nil)
		}
		str, ok := raw.(string)
		if !ok || str == "" {
			// Empty string means an explicit null for free-text fields.
			return (*string)(nil)
		}
		return &str
	}
}

func wireValue(t FieldType, stored any) any {
	switch t {
	case Date:
		tm, _ := stored.(*time.Time)
		if tm == nil {
			return nil
		}
		return tm.Format("2006-01-02")
	case JSONList:
		raw, _ := stored.(*string)
		return LoadTechnologies(raw)
	case Bool:
		b, _ := stored.(bool)
		return b
	case Int:
		n, _ := stored.(*int64)
		if n == nil {
			return nil
		}
		return *n
	default:
		str, _ := stored.(*string)
		if str == nil {
			return nil
		}
		return *str
	}
}

// Text returns the stored text value of a column, or "" for null.
func (i *Item) Text(column string) string {
	str, _ := i.Values[column].(*string)
	if str == nil {
		return ""
	}
	return *str
}

func toStringSlice(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func toIntPtr(raw any) *int64 {
	switch v := raw.(type) {
	case float64:
		// encoding/json decodes every number to float64.
		n := int64(v)
		return &n
	case int:
		n := int64(v)
		return &n
	case int64:
		return &v
	case string:
		if year := SafeYear(v); year != nil {
			n := int64(*year)
			return &n
		}
		return nil
	default:
		return nil
	}
}

// Repository is the generic persistence contract every section kind shares.
// All lookups are scoped to the owning user and, when the schema carries a
// tag, to the tag value. An id owned by someone else or tagged differently
// is indistinguishable from a missing row.
type Repository interface {
	ListByOwner(ctx context.Context, schema *Schema, ownerID uuid.UUID) ([]*Item, error)
	FindByID(ctx context.Context, schema *Schema, id int64, ownerID uuid.UUID) (*Item, error)
	Insert(ctx context.Context, schema *Schema, item *Item) error
	Update(ctx context.Context, schema *Schema, item *Item) error
	Delete(ctx context.Context, schema *Schema, id int64, ownerID uuid.UUID) error
	// ReplaceByOwner atomically deletes every row the owner has for this
	// schema (tag-scoped) and inserts items in order. Used by the bulk
	// profile update; identities are never preserved across a replace.
	ReplaceByOwner(ctx context.Context, schema *Schema, ownerID uuid.UUID, items []*Item) error
}
