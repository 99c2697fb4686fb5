package constants

const cachePrefixWingReadiness = "READINESS_"

// WingReadinessKey builds the cache key for a wing's readiness report.
func WingReadinessKey(wingID string) string {
	return cachePrefixWingReadiness + wingID
}
