package cache

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis"
	"github.com/wayming/jsonconv/config"
	"github.com/wayming/jsonconv/jclogger"
)

// Usage counters expire a day after the first conversion of a client.
const USAGE_TTL = 24 * time.Hour

type ICacheManager interface {
	Connect(host string, port string) error
	Disconnect() error
	AddUsage(clientID string, records int64) (int64, error)
	GetUsage(clientID string) (int64, error)
	SetUnlocked(conversionID string) error
	IsUnlocked(conversionID string) (bool, error)
}

type CacheManager struct {
	clientHandle *redis.Client
}

func NewCacheManager() *CacheManager {
	return &CacheManager{}
}

func (m *CacheManager) Connect(host string, port string) error {
	redisAddr := host + ":" + port
	m.clientHandle = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: "",
		DB:       0})

	res, err := m.clientHandle.Ping().Result()
	if err != nil {
		return errors.New("Failed to connect to " + redisAddr + ". Error: " + err.Error())
	}
	jclogger.JCLoggerInstance.Printf("Connected to %s: %s", redisAddr, res)
	return nil
}

func (m *CacheManager) Disconnect() error {
	if m.clientHandle == nil {
		return nil
	}
	return m.clientHandle.Close()
}

// AddUsage adds the record count of a finished conversion to the client's
// rolling usage counter and returns the new total.
func (m *CacheManager) AddUsage(clientID string, records int64) (int64, error) {
	key := config.CACHE_KEY_USAGE_PREFIX + clientID
	total, err := m.clientHandle.IncrBy(key, records).Result()
	if err != nil {
		return 0, errors.New("Failed to increase usage for " + clientID + ". Error: " + err.Error())
	}
	if total == records {
		// First conversion of the window, start the clock.
		m.clientHandle.Expire(key, USAGE_TTL)
	}
	jclogger.JCLoggerInstance.Printf("Usage for %s is now %d records", clientID, total)
	return total, nil
}

func (m *CacheManager) GetUsage(clientID string) (int64, error) {
	key := config.CACHE_KEY_USAGE_PREFIX + clientID
	val, err := m.clientHandle.Get(key).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, errors.New("Failed to get usage for " + clientID + ". Error: " + err.Error())
	}
	total, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, errors.New("Failed to parse usage value " + val + ". Error: " + err.Error())
	}
	return total, nil
}

func (m *CacheManager) SetUnlocked(conversionID string) error {
	key := config.CACHE_KEY_UNLOCK_PREFIX + conversionID
	if err := m.clientHandle.Set(key, "1", 0).Err(); err != nil {
		return errors.New("Failed to unlock conversion " + conversionID + ". Error: " + err.Error())
	}
	jclogger.JCLoggerInstance.Printf("Conversion %s unlocked", conversionID)
	return nil
}

func (m *CacheManager) IsUnlocked(conversionID string) (bool, error) {
	key := config.CACHE_KEY_UNLOCK_PREFIX + conversionID
	_, err := m.clientHandle.Get(key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errors.New("Failed to check unlock for " + conversionID + ". Error: " + err.Error())
	}
	return true, nil
}
