package postgres

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mintbomb27/cc-wrapped/categorize"
	"github.com/mintbomb27/cc-wrapped/classify"
	"github.com/mintbomb27/cc-wrapped/extractor"
)

// ImportResult tracks the outcome of an import operation
type ImportResult struct {
	Processed int
	Skipped   int
	Failed    int
	Errors    []string
}

// ImportOptions configures the import behavior
type ImportOptions struct {
	CardName string // Card the statements belong to (required)
	Issuer   string // Issuer hint for strategy selection
	Password string // Statement PDF password, if encrypted
	Force    bool   // Force reprocessing of existing statements
	Verbose  bool   // Enable verbose logging
}

// ImportFile extracts, classifies, and stores a single statement PDF.
// A statement is keyed by (card, file name): re-importing the same file is a
// skip unless Force is set, in which case the old rows are replaced.
func (db *DB) ImportFile(ctx context.Context, filePath string, opts ImportOptions) (processed, skipped, failed int, errors []string) {
	fileName := filepath.Base(filePath)

	raws := extractor.ProcessFile(filePath, opts.Password, opts.Issuer)
	if len(raws) == 0 {
		return 0, 0, 1, []string{fmt.Sprintf("%s: no transactions extracted", fileName)}
	}

	transactions := classify.All(raws, categorize.Shared())

	cardID, err := db.GetOrCreateCard(ctx, Card{Name: opts.CardName, Issuer: opts.Issuer})
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s: card error: %v", fileName, err)}
	}

	exists, existingID, err := db.StatementExists(ctx, cardID, fileName)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s: check error: %v", fileName, err)}
	}

	if exists && !opts.Force {
		if opts.Verbose {
			log.Printf("SKIP %s (already imported)", fileName)
		}
		return 0, 1, 0, nil
	}

	// If forcing, delete the existing statement first
	if exists && opts.Force {
		if err := db.DeleteStatement(ctx, existingID); err != nil {
			return 0, 0, 1, []string{fmt.Sprintf("%s: delete error: %v", fileName, err)}
		}
	}

	statementID, err := db.CreateStatement(ctx, cardID, fileName, len(transactions))
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s: statement error: %v", fileName, err)}
	}

	if err := db.CreateTransactions(ctx, statementID, transactions); err != nil {
		// Rollback by deleting the statement
		_ = db.DeleteStatement(ctx, statementID)
		return 0, 0, 1, []string{fmt.Sprintf("%s: transactions error: %v", fileName, err)}
	}

	if opts.Verbose {
		log.Printf("OK   %s (%d transactions)", fileName, len(transactions))
	}
	return 1, 0, 0, nil
}

// ImportDirectory processes all PDF files in a directory
func (db *DB) ImportDirectory(ctx context.Context, dirPath string, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var statementFiles []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			statementFiles = append(statementFiles, filepath.Join(dirPath, e.Name()))
		}
	}

	log.Printf("Scanning: %s", dirPath)
	log.Printf("Found %d statement files\n", len(statementFiles))

	for _, filePath := range statementFiles {
		processed, skipped, failed, errors := db.ImportFile(ctx, filePath, opts)

		result.Processed += processed
		result.Skipped += skipped
		result.Failed += failed
		result.Errors = append(result.Errors, errors...)

		if opts.Verbose && failed > 0 {
			for _, errMsg := range errors {
				log.Printf("FAIL %s", errMsg)
			}
		}
	}

	return result, nil
}

// Import handles both file and directory imports
func (db *DB) Import(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	if opts.CardName == "" {
		return nil, fmt.Errorf("card name is required")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if info.IsDir() {
		return db.ImportDirectory(ctx, path, opts)
	}

	result := &ImportResult{}
	result.Processed, result.Skipped, result.Failed, result.Errors = db.ImportFile(ctx, path, opts)
	return result, nil
}
