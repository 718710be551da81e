package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/sichterhq/sichter/internal/common"
	"github.com/sichterhq/sichter/internal/model"
)

// Load reads the persisted rule set. A fresh database is seeded with the
// built-in default vocabulary. On later loads every default category is
// created if missing, but the keywords of an existing category are never
// overwritten, so operator edits survive.
//
// Read or write failures are reported as common.ErrStorageUnavailable so
// the caller can fall back to an in-memory default rule set.
func (s *SQLiteStorage) Load(ctx context.Context) (*model.RuleSet, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	categories, err := s.loadCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	if len(categories) == 0 {
		rules := model.DefaultRuleSet()
		if err := s.ReplaceRuleSet(ctx, rules); err != nil {
			return nil, err
		}
		common.LogInfo("seeded rule store with default vocabulary", common.Fields{"categories": rules.Len()})
		return rules, nil
	}

	rules, err := model.NewRuleSetFromCategories(categories)
	if err != nil {
		return nil, fmt.Errorf("persisted rule set is invalid: %w", err)
	}

	if merged := mergeDefaults(rules); merged > 0 {
		if err := s.ReplaceRuleSet(ctx, rules); err != nil {
			return nil, err
		}
		common.LogInfo("added missing default categories", common.Fields{"count": merged})
	}

	return rules, nil
}

// ReplaceRuleSet writes the full rule set as a complete replacement of the
// persisted state, in a single transaction.
func (s *SQLiteStorage) ReplaceRuleSet(ctx context.Context, rules *model.RuleSet) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRuleSet(rules); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", common.ErrStorageUnavailable, err)
	}

	if err := replaceRuleSetTx(ctx, tx, rules); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit rule set: %v", common.ErrStorageUnavailable, err)
	}

	slog.Debug("persisted rule set", "categories", rules.Len())
	return nil
}

func (s *SQLiteStorage) loadCategories(ctx context.Context) ([]model.Category, error) {
	query := `
		SELECT c.name, k.term
		FROM categories c
		LEFT JOIN keywords k ON k.category_id = c.id
		ORDER BY c.position, k.id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	index := make(map[string]int)

	for rows.Next() {
		var name string
		var term *string
		if err := rows.Scan(&name, &term); err != nil {
			return nil, fmt.Errorf("failed to scan rule row: %w", err)
		}

		i, ok := index[name]
		if !ok {
			i = len(categories)
			index[name] = i
			categories = append(categories, model.Category{Name: name})
		}
		if term != nil {
			categories[i].Keywords = append(categories[i].Keywords, *term)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rules: %w", err)
	}

	return categories, nil
}

func replaceRuleSetTx(ctx context.Context, tx *sql.Tx, rules *model.RuleSet) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM keywords`); err != nil {
		return fmt.Errorf("failed to clear keywords: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("failed to clear categories: %w", err)
	}

	insertCategory, err := tx.PrepareContext(ctx,
		`INSERT INTO categories (name, position) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare category insert: %w", err)
	}
	defer insertCategory.Close()

	insertKeyword, err := tx.PrepareContext(ctx,
		`INSERT INTO keywords (category_id, term) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare keyword insert: %w", err)
	}
	defer insertKeyword.Close()

	for position, cat := range rules.Snapshot() {
		result, err := insertCategory.ExecContext(ctx, cat.Name, position)
		if err != nil {
			return fmt.Errorf("failed to insert category %q: %w", cat.Name, err)
		}
		categoryID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get category ID: %w", err)
		}

		for _, term := range cat.Keywords {
			if _, err := insertKeyword.ExecContext(ctx, categoryID, term); err != nil {
				return fmt.Errorf("failed to insert keyword %q: %w", term, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO ruleset_meta (id, replaced_at) VALUES (1, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET replaced_at = CURRENT_TIMESTAMP`); err != nil {
		return fmt.Errorf("failed to update rule set metadata: %w", err)
	}

	return nil
}

// mergeDefaults adds every built-in default category missing from the rule
// set, with its default keywords. Existing categories are left untouched.
// Returns the number of categories added.
func mergeDefaults(rules *model.RuleSet) int {
	merged := 0
	for _, def := range model.DefaultCategories() {
		if rules.HasCategory(def.Name) {
			continue
		}
		if err := rules.AddCategory(def.Name); err != nil {
			continue
		}
		for _, term := range def.Keywords {
			_ = rules.AddKeyword(def.Name, term)
		}
		merged++
	}
	return merged
}
