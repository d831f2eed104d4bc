package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid request body")

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %s", errInvalidBody, err.Error())
	}
	return nil
}

func writeBodyError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, "Invalid request body: "+strings.TrimPrefix(err.Error(), errInvalidBody.Error()+": "))
}

// timestamp accepts RFC 3339 with or without a zone offset. A value
// without an offset is read as UTC.
type timestamp time.Time

func (t *timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.New("timestamp must be a string")
	}
	parsed, err := domain.ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = timestamp(parsed)
	return nil
}

func (t *timestamp) ptr() *time.Time {
	if t == nil {
		return nil
	}
	v := time.Time(*t)
	return &v
}

func (t *timestamp) value() time.Time {
	if t == nil {
		return time.Time{}
	}
	return time.Time(*t)
}

// optional tells an absent JSON field apart from an explicit null.
type optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// queryParams reads typed query parameters and collects every parse error.
type queryParams struct {
	values map[string][]string
	errs   []domain.FieldError
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{values: r.URL.Query()}
}

func (q *queryParams) get(name string) string {
	if v := q.values[name]; len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

func (q *queryParams) fail(name, message string) {
	q.errs = append(q.errs, domain.FieldError{Field: name, Message: message})
}

func (q *queryParams) id(name string) *uuid.UUID {
	s := q.get(name)
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		q.fail(name, "must be a valid UUID")
		return nil
	}
	return &id
}

// ids accepts both repeated parameters and comma-separated lists.
func (q *queryParams) ids(name string) []uuid.UUID {
	var ids []uuid.UUID
	for _, raw := range q.values[name] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := uuid.Parse(part)
			if err != nil {
				q.fail(name, "must contain valid UUIDs")
				return nil
			}
			ids = append(ids, id)
		}
	}
	return ids
}

func (q *queryParams) boolean(name string) *bool {
	s := q.get(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		q.fail(name, "must be a boolean")
		return nil
	}
	return &v
}

func (q *queryParams) date(name string) *time.Time {
	s := q.get(name)
	if s == "" {
		return nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		q.fail(name, "must be a date in YYYY-MM-DD form")
		return nil
	}
	return &d
}

func (q *queryParams) integer(name string, def int) int {
	s := q.get(name)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		q.fail(name, "must be an integer")
		return def
	}
	return v
}

func (q *queryParams) role(name string) *domain.UserRole {
	s := q.get(name)
	if s == "" {
		return nil
	}
	role := domain.UserRole(strings.ToLower(s))
	return &role
}

func (q *queryParams) err() error {
	if len(q.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(q.errs)
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}

// limit reads the page size. Absent means the service default; an explicit
// value must be positive.
func (q *queryParams) limit() int {
	n := q.integer("limit", 0)
	if q.get("limit") != "" && n < 1 {
		q.fail("limit", "must be >= 1")
	}
	return n
}
