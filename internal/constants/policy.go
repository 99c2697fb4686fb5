package constants

// Qualification policy constants shared by the import, backfill and
// readiness paths.
const (
	// CombatReadyThreshold is the number of distinct FMQ/IP skills a pilot
	// needs to count as combat-ready.
	CombatReadyThreshold = 3

	// MaxImportBatch caps a single import request. Larger batches are
	// rejected outright before any row is processed.
	MaxImportBatch = 1000

	// MaxImportErrors bounds the error messages echoed back in an import
	// report. Skips beyond this are still counted, just not listed.
	MaxImportErrors = 20

	// BackfillIdentity is the updated_by sentinel stamped on rows created
	// by the backfill operation.
	BackfillIdentity = "system:backfill"
)
