package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/pageforge/pageforge"
)

// Compile-time interface verification.
var _ pageforge.PageService = (*PageService)(nil)

// PageService implements pageforge.PageService using SQLite.
//
// Sections and metadata are stored as JSON columns. Reads merge the page's
// override set onto its sections; the stored sections are never rewritten by
// an override.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreatePage creates a new page.
func (s *PageService) CreatePage(ctx context.Context, page *pageforge.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	page.CreatedAt = time.Now().UTC()
	page.UpdatedAt = page.CreatedAt
	if page.PageType == "" {
		page.PageType = pageforge.CategoryGeneric
	}

	products, sections, metadata, err := marshalColumns(page)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO pages (id, title, slug, html_content, content_hash, page_type, description,
			phone, email, city, address, products, sections, metadata, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, page.ID, page.Title, page.Slug, page.HTMLContent, hashContent(page.HTMLContent),
		string(page.PageType), page.Description, page.Phone, page.Email, page.City, page.Address,
		products, sections, metadata, page.IsActive,
		page.CreatedAt.Format(time.RFC3339), page.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindPageByID retrieves a page by ID with overrides applied.
func (s *PageService) FindPageByID(ctx context.Context, id string) (*pageforge.Page, error) {
	page, err := s.findRawByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return merged(page), nil
}

// FindPageBySlug retrieves a page by slug with overrides applied.
func (s *PageService) FindPageBySlug(ctx context.Context, slug string) (*pageforge.Page, error) {
	row := s.db.QueryRowContext(ctx, selectPage+" WHERE slug = ?", slug)
	page, err := scanPage(row)
	if err != nil {
		return nil, err
	}
	return merged(page), nil
}

// FindPages retrieves pages matching the filter, newest first.
func (s *PageService) FindPages(ctx context.Context, filter pageforge.PageFilter) ([]*pageforge.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString(selectPage + " WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}
	if filter.PageType != nil {
		query.WriteString(" AND page_type = ?")
		args = append(args, string(*filter.PageType))
	}
	if filter.IsActive != nil {
		query.WriteString(" AND is_active = ?")
		args = append(args, *filter.IsActive)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*pageforge.Page
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, merged(page))
	}

	return pages, rows.Err()
}

// UpdatePage updates an existing page.
func (s *PageService) UpdatePage(ctx context.Context, id string, upd pageforge.PageUpdate) (*pageforge.Page, error) {
	page, err := s.findRawByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		page.Title = *upd.Title
	}
	if upd.HTMLContent != nil {
		page.HTMLContent = *upd.HTMLContent
	}
	if upd.Description != nil {
		page.Description = *upd.Description
	}
	if upd.Phone != nil {
		page.Phone = *upd.Phone
	}
	if upd.Email != nil {
		page.Email = *upd.Email
	}
	if upd.City != nil {
		page.City = *upd.City
	}
	if upd.Address != nil {
		page.Address = *upd.Address
	}
	if upd.Products != nil {
		page.Products = *upd.Products
	}
	if upd.IsActive != nil {
		page.IsActive = *upd.IsActive
	}

	if err := page.Validate(); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, page); err != nil {
		return nil, err
	}

	return merged(page), nil
}

// UpdatePageField applies a single dotted-path field update. Paths under
// "sections." are recorded as sparse overrides and leave stored section
// content untouched. Any other path mutates the page document strictly: a
// missing intermediate key is an EINVALID error.
func (s *PageService) UpdatePageField(ctx context.Context, id string, fieldPath string, value any) (*pageforge.Page, error) {
	if fieldPath == "" {
		return nil, pageforge.Errorf(pageforge.EINVALID, "field path required")
	}

	page, err := s.findRawByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if index, rest, ok := pageforge.SectionFieldPath(fieldPath); ok {
		if page.Metadata.SectionOverrides == nil {
			page.Metadata.SectionOverrides = make(pageforge.Overrides)
		}
		page.Metadata.SectionOverrides.Set(index, rest, value)
	} else {
		if err := setPageField(page, fieldPath, value); err != nil {
			return nil, err
		}
	}

	if err := page.Validate(); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, page); err != nil {
		return nil, err
	}

	return merged(page), nil
}

// DeletePage permanently removes a page.
func (s *PageService) DeletePage(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pageforge.Errorf(pageforge.ENOTFOUND, "page not found")
	}

	return nil
}

// setPageField applies a strict dotted-path update by round-tripping the
// page through its JSON document form.
func setPageField(page *pageforge.Page, fieldPath string, value any) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return err
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}

	if err := pageforge.SetNestedField(doc, fieldPath, value); err != nil {
		return err
	}

	raw, err = json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, page); err != nil {
		return pageforge.Errorf(pageforge.EINVALID, "invalid value for field: %s", fieldPath)
	}
	return nil
}

// merged returns the page with overrides applied to its sections.
func merged(page *pageforge.Page) *pageforge.Page {
	if len(page.Metadata.SectionOverrides) > 0 {
		page.Sections = pageforge.ApplyOverrides(page.Sections, page.Metadata.SectionOverrides)
	}
	return page
}

const selectPage = `SELECT id, title, slug, html_content, page_type, description,
	phone, email, city, address, products, sections, metadata, is_active, created_at, updated_at
	FROM pages`

// findRawByID retrieves a page without applying overrides.
func (s *PageService) findRawByID(ctx context.Context, id string) (*pageforge.Page, error) {
	row := s.db.QueryRowContext(ctx, selectPage+" WHERE id = ?", id)
	return scanPage(row)
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPage(row scanner) (*pageforge.Page, error) {
	var page pageforge.Page
	var pageType, products, sections, metadata, createdAt, updatedAt string

	err := row.Scan(&page.ID, &page.Title, &page.Slug, &page.HTMLContent, &pageType,
		&page.Description, &page.Phone, &page.Email, &page.City, &page.Address,
		&products, &sections, &metadata, &page.IsActive, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, pageforge.Errorf(pageforge.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}

	page.PageType = pageforge.PageCategory(pageType)
	if err := json.Unmarshal([]byte(products), &page.Products); err != nil {
		return nil, fmt.Errorf("failed to parse products: %w", err)
	}
	if err := json.Unmarshal([]byte(sections), &page.Sections); err != nil {
		return nil, fmt.Errorf("failed to parse sections: %w", err)
	}
	if err := json.Unmarshal([]byte(metadata), &page.Metadata); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	if page.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if page.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &page, nil
}

func marshalColumns(page *pageforge.Page) (products, sections, metadata string, err error) {
	p, err := json.Marshal(page.Products)
	if err != nil {
		return "", "", "", err
	}
	s, err := json.Marshal(page.Sections)
	if err != nil {
		return "", "", "", err
	}
	m, err := json.Marshal(page.Metadata)
	if err != nil {
		return "", "", "", err
	}
	if page.Products == nil {
		p = []byte("[]")
	}
	if page.Sections == nil {
		s = []byte("[]")
	}
	return string(p), string(s), string(m), nil
}

// persist writes all mutable columns and bumps updated_at.
func (s *PageService) persist(ctx context.Context, page *pageforge.Page) error {
	products, sections, metadata, err := marshalColumns(page)
	if err != nil {
		return err
	}

	page.UpdatedAt = time.Now().UTC()
	_, err = s.db.ExecContext(ctx, `
		UPDATE pages
		SET title = ?, slug = ?, html_content = ?, content_hash = ?, page_type = ?, description = ?,
			phone = ?, email = ?, city = ?, address = ?, products = ?, sections = ?, metadata = ?,
			is_active = ?, updated_at = ?
		WHERE id = ?
	`, page.Title, page.Slug, page.HTMLContent, hashContent(page.HTMLContent), string(page.PageType),
		page.Description, page.Phone, page.Email, page.City, page.Address,
		products, sections, metadata, page.IsActive, page.UpdatedAt.Format(time.RFC3339), page.ID)

	return err
}
