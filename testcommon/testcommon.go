package testcommon

import (
	"log"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/wayming/jsonconv/cache"
	"github.com/wayming/jsonconv/dbstore"
	"github.com/wayming/jsonconv/jclogger"
)

// MockTestFixture bundles the gomock controller and the store/cache
// mocks that service tests share, with the always-safe expectations
// preset.
type MockTestFixture struct {
	mockCtl   *gomock.Controller
	storeMock *dbstore.MockConversionStore
	cacheMock *cache.MockICacheManager
	logger    *log.Logger
}

func NewMockTestFixture(t *testing.T) *MockTestFixture {
	var f MockTestFixture
	f.Setup(t)
	return &f
}

func (f *MockTestFixture) Setup(t *testing.T) {
	f.logger = TestLogger(t.Name())
	f.logger.Printf("setup test %s", t.Name())
	f.mockCtl = gomock.NewController(t)

	f.storeMock = dbstore.NewMockConversionStore(f.mockCtl)
	f.storeMock.EXPECT().Connect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.storeMock.EXPECT().Disconnect().AnyTimes()

	f.cacheMock = cache.NewMockICacheManager(f.mockCtl)
	f.cacheMock.EXPECT().Connect(gomock.Any(), gomock.Any()).AnyTimes()
	f.cacheMock.EXPECT().Disconnect().AnyTimes()
}

func (f *MockTestFixture) Teardown(t *testing.T) {
	f.logger.Printf("teardown test %s", t.Name())
	f.mockCtl.Finish()
}

func (f *MockTestFixture) StoreExpect() *dbstore.MockConversionStoreMockRecorder {
	return f.storeMock.EXPECT()
}

func (f *MockTestFixture) CacheExpect() *cache.MockICacheManagerMockRecorder {
	return f.cacheMock.EXPECT()
}

func (f *MockTestFixture) StoreMock() *dbstore.MockConversionStore {
	return f.storeMock
}

func (f *MockTestFixture) CacheMock() *cache.MockICacheManager {
	return f.cacheMock
}

func (f *MockTestFixture) Logger() *log.Logger {
	return f.logger
}

func TestLogger(testName string) *log.Logger {
	os.MkdirAll("logs", 0755)
	// Subtest names contain path separators.
	logFile := "logs/" + strings.ReplaceAll(testName, "/", "_") + ".log"
	os.Remove(logFile)
	file, _ := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	testLogger := log.New(file, "jsonconvtest: ", log.Ldate|log.Ltime)
	jclogger.JCLoggerInstance = jclogger.NewJCLoggerByFile(file)
	return testLogger
}
