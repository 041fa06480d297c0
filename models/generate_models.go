package models

import (
	"fmt"
	"log"
	"os"
	"reflect"
	"sort"
	"strings"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*
Code generation and column mismatch report.

GENERATE_MODELS=true writes typed query helpers for every model into
./generated using gorm/gen. The schema must already exist (AUTO_MIGRATE=true
or SEED_DATABASE=true create it).

GENERATE_COLUMN_REPORT=true prints, per table, the database columns that no
model field maps to. Example output:

	=== COLUMN MISMATCH REPORT ===
	--- Table: articles ---
	All columns are accounted for in the model.
	=== SUMMARY ===
	Total mismatched columns across all tables: 0
*/

// All returns one zero value per persisted model.
func All() []interface{} {
	return []interface{}{Topic{}, User{}, Article{}, Comment{}}
}

func GenerateModels(db *gorm.DB, outPath string) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}

	verboseLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)
	db = db.Session(&gorm.Session{
		Logger:                 verboseLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	if outPath == "" {
		outPath = "./generated"
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(All()...)

	GenerateColumnMismatchReport(db, os.Stdout)

	g.Execute()
	fmt.Println("Model generation complete!")
	return nil
}

type reportWriter interface {
	Write(p []byte) (int, error)
}

// GenerateColumnMismatchReport writes a report of database columns that aren't accounted for in Go models
// and returns the total number of mismatched columns.
func GenerateColumnMismatchReport(db *gorm.DB, out reportWriter) int {
	fmt.Fprintln(out, "=== COLUMN MISMATCH REPORT ===")

	totalMismatches := 0
	for _, model := range All() {
		tableName := tableNameOf(model)
		fmt.Fprintf(out, "\n--- Table: %s ---\n", tableName)

		dbColumns, err := getTableColumns(db, tableName)
		if err != nil {
			fmt.Fprintf(out, "Error getting columns for table %s: %v\n", tableName, err)
			continue
		}

		mismatches := findColumnMismatches(dbColumns, getModelFields(model))
		if len(mismatches) > 0 {
			fmt.Fprintf(out, "Found %d columns not accounted for in model:\n", len(mismatches))
			for _, col := range mismatches {
				fmt.Fprintf(out, "  - %s\n", col)
			}
			totalMismatches += len(mismatches)
		} else {
			fmt.Fprintln(out, "All columns are accounted for in the model.")
		}
	}

	fmt.Fprintf(out, "\n=== SUMMARY ===\n")
	fmt.Fprintf(out, "Total mismatched columns across all tables: %d\n", totalMismatches)
	return totalMismatches
}

func tableNameOf(model interface{}) string {
	if t, ok := model.(interface{ TableName() string }); ok {
		return t.TableName()
	}
	return strings.ToLower(reflect.TypeOf(model).Name()) + "s"
}

// getTableColumns retrieves column names from a database table
func getTableColumns(db *gorm.DB, tableName string) ([]string, error) {
	var columns []string
	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = ?
		AND table_schema = CURRENT_SCHEMA()
		ORDER BY ordinal_position
	`
	if err := db.Raw(query, tableName).Scan(&columns).Error; err != nil {
		return nil, fmt.Errorf("error querying columns for table %s: %w", tableName, err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s does not exist", tableName)
	}
	return columns, nil
}

// getModelFields extracts column names from a Go struct's gorm tags
func getModelFields(model interface{}) []string {
	var fields []string
	t := reflect.TypeOf(model)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			continue
		}
		if columnName := extractColumnNameFromGormTag(field.Tag.Get("gorm")); columnName != "" {
			fields = append(fields, columnName)
		}
	}

	return fields
}

// extractColumnNameFromGormTag extracts the column name from a GORM tag
func extractColumnNameFromGormTag(gormTag string) string {
	for _, part := range strings.Split(gormTag, ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return ""
}

// findColumnMismatches finds columns that exist in the database but not in the model
func findColumnMismatches(dbColumns, modelFields []string) []string {
	modelFieldSet := make(map[string]bool, len(modelFields))
	for _, field := range modelFields {
		modelFieldSet[field] = true
	}

	var mismatches []string
	for _, col := range dbColumns {
		if !modelFieldSet[col] {
			mismatches = append(mismatches, col)
		}
	}
	sort.Strings(mismatches)
	return mismatches
}
