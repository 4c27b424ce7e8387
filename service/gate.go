package service

import (
	"github.com/wayming/jsonconv/cache"
	"github.com/wayming/jsonconv/jclogger"
)

// Gate decides, from the record count alone, whether a conversion stays
// inside the client's free allowance. It knows nothing about payments or
// checkout; callers turn a rejection into whatever signal they need.
type Gate struct {
	cacheManager    cache.ICacheManager
	freeRecordLimit int64
}

func NewGate(cacheManager cache.ICacheManager, freeRecordLimit int) *Gate {
	return &Gate{
		cacheManager:    cacheManager,
		freeRecordLimit: int64(freeRecordLimit),
	}
}

// Allow reports whether the client may convert recordCount more records.
// A cache outage degrades to allowing the conversion rather than taking
// the converter down with it.
func (g *Gate) Allow(clientID string, recordCount int) bool {
	usage, err := g.cacheManager.GetUsage(clientID)
	if err != nil {
		jclogger.JCLoggerInstance.Printf("Failed to read usage for %s, allowing conversion. Error: %s", clientID, err.Error())
		return true
	}
	return usage+int64(recordCount) <= g.freeRecordLimit
}

// Consume records a finished conversion against the client's allowance.
func (g *Gate) Consume(clientID string, recordCount int) {
	if _, err := g.cacheManager.AddUsage(clientID, int64(recordCount)); err != nil {
		jclogger.JCLoggerInstance.Printf("Failed to add usage for %s. Error: %s", clientID, err.Error())
	}
}
