package service

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wayming/jsonconv/cache"
	"github.com/wayming/jsonconv/common"
	"github.com/wayming/jsonconv/config"
	"github.com/wayming/jsonconv/dbstore"
	"github.com/wayming/jsonconv/jclogger"
	"github.com/wayming/jsonconv/json2tab"
)

const historyLimit = 50

var supportedFormats = map[string]json2tab.Format{
	"sql": json2tab.FormatSQL,
	"csv": json2tab.FormatCSV,
}

var formatContentTypes = map[string]string{
	"sql": "application/sql",
	"csv": "text/csv",
}

// ConvertService glues the converter core to its collaborators: the
// conversion store, the usage cache and the record-count gate. The core
// itself stays unaware of all three.
type ConvertService struct {
	store dbstore.ConversionStore
	cache cache.ICacheManager
	gate  *Gate
}

func NewConvertService(store dbstore.ConversionStore, cacheManager cache.ICacheManager, freeRecordLimit int) *ConvertService {
	return &ConvertService{
		store: store,
		cache: cacheManager,
		gate:  NewGate(cacheManager, freeRecordLimit),
	}
}

type convertRequest struct {
	JSON      string `json:"json"`
	Format    string `json:"format"`
	TableName string `json:"table_name"`
}

type errorResponse struct {
	Error        string `json:"error"`
	ConversionID string `json:"conversion_id,omitempty"`
	RecordCount  int    `json:"record_count,omitempty"`
}

func (s *ConvertService) HandleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, NewServiceError("method not allowed", http.StatusMethodNotAllowed))
		return
	}

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, NewServiceError("invalid request body: "+err.Error(), http.StatusBadRequest))
		return
	}
	if req.TableName == "" {
		req.TableName = config.DEFAULT_TABLE_NAME
	}
	if !common.Exists(supportedFormats, req.Format) {
		writeError(w, NewServiceError("unsupported format "+req.Format, http.StatusBadRequest))
		return
	}

	value, err := json2tab.ParseValue(req.JSON)
	if err != nil {
		writeError(w, NewServiceError(err.Error(), http.StatusBadRequest))
		return
	}
	records, maxDepth := json2tab.Flatten(value)

	caller := clientID(r)
	if !s.gate.Allow(caller, len(records)) {
		conv := &dbstore.Conversion{
			ID:          uuid.NewString(),
			TableName:   req.TableName,
			Format:      req.Format,
			Payload:     req.JSON,
			RecordCount: len(records),
			Status:      dbstore.STATUS_PENDING,
		}
		if err := s.store.Save(conv); err != nil {
			writeError(w, NewServiceError("failed to store pending conversion", http.StatusInternalServerError))
			return
		}
		writeJSON(w, http.StatusPaymentRequired, errorResponse{
			Error:        "record count exceeds the free limit",
			ConversionID: conv.ID,
			RecordCount:  len(records),
		})
		return
	}

	artifact, err := json2tab.Generate(records, supportedFormats[req.Format], req.TableName)
	if err != nil {
		writeError(w, NewServiceError(err.Error(), http.StatusBadRequest))
		return
	}

	s.gate.Consume(caller, len(records))
	conv := &dbstore.Conversion{
		ID:          uuid.NewString(),
		TableName:   req.TableName,
		Format:      req.Format,
		Payload:     req.JSON,
		RecordCount: len(records),
		Status:      dbstore.STATUS_COMPLETED,
	}
	if err := s.store.Save(conv); err != nil {
		// History is best effort, the client still gets the artifact.
		jclogger.JCLoggerInstance.Printf("Failed to save conversion history. Error: %s", err.Error())
	}

	writeArtifact(w, artifact, req.TableName, req.Format, len(records), maxDepth)
}

func (s *ConvertService) HandleUnlock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, NewServiceError("method not allowed", http.StatusMethodNotAllowed))
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/unlock/")
	conv, err := s.store.Get(id)
	if err != nil {
		writeError(w, storeError(id, err))
		return
	}

	if err := s.cache.SetUnlocked(conv.ID); err != nil {
		writeError(w, NewServiceError("failed to unlock conversion "+id, http.StatusInternalServerError))
		return
	}
	if err := s.store.UpdateStatus(conv.ID, dbstore.STATUS_UNLOCKED); err != nil {
		jclogger.JCLoggerInstance.Printf("Failed to update conversion %s. Error: %s", id, err.Error())
	}

	writeJSON(w, http.StatusOK, map[string]string{"conversion_id": conv.ID, "status": dbstore.STATUS_UNLOCKED})
}

func (s *ConvertService) HandleDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, NewServiceError("method not allowed", http.StatusMethodNotAllowed))
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/download/")
	conv, err := s.store.Get(id)
	if err != nil {
		writeError(w, storeError(id, err))
		return
	}

	if conv.Status == dbstore.STATUS_PENDING {
		unlocked, err := s.cache.IsUnlocked(conv.ID)
		if err != nil {
			writeError(w, NewServiceError("failed to check conversion "+id, http.StatusInternalServerError))
			return
		}
		if !unlocked {
			writeJSON(w, http.StatusPaymentRequired, errorResponse{
				Error:        "conversion is not unlocked",
				ConversionID: conv.ID,
				RecordCount:  conv.RecordCount,
			})
			return
		}
	}

	value, err := json2tab.ParseValue(conv.Payload)
	if err != nil {
		writeError(w, NewServiceError("stored payload is not valid JSON", http.StatusInternalServerError))
		return
	}
	records, maxDepth := json2tab.Flatten(value)
	artifact, err := json2tab.Generate(records, supportedFormats[conv.Format], conv.TableName)
	if err != nil {
		writeError(w, NewServiceError(err.Error(), http.StatusInternalServerError))
		return
	}

	if err := s.store.UpdateStatus(conv.ID, dbstore.STATUS_COMPLETED); err != nil {
		jclogger.JCLoggerInstance.Printf("Failed to update conversion %s. Error: %s", id, err.Error())
	}

	writeArtifact(w, artifact, conv.TableName, conv.Format, len(records), maxDepth)
}

type historyItem struct {
	ID          string    `json:"id"`
	TableName   string    `json:"table_name"`
	Format      string    `json:"format"`
	RecordCount int       `json:"record_count"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// HandleHistory lists recent conversions without their payloads.
func (s *ConvertService) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, NewServiceError("method not allowed", http.StatusMethodNotAllowed))
		return
	}

	convs, err := s.store.Recent(historyLimit)
	if err != nil {
		writeError(w, NewServiceError("failed to list conversions", http.StatusInternalServerError))
		return
	}

	items := make([]historyItem, 0, len(convs))
	for _, conv := range convs {
		items = append(items, historyItem{
			ID:          conv.ID,
			TableName:   conv.TableName,
			Format:      conv.Format,
			RecordCount: conv.RecordCount,
			Status:      conv.Status,
			CreatedAt:   conv.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *ConvertService) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// clientID identifies the caller for usage accounting. An explicit header
// wins, otherwise the remote host is used.
func clientID(r *http.Request) string {
	if id := r.Header.Get("X-Client-Id"); id != "" {
		return id
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func storeError(id string, err error) ServiceError {
	if errors.Is(err, dbstore.ErrNotFound) {
		return NewServiceError("unknown conversion "+id, http.StatusNotFound)
	}
	return NewServiceError("failed to load conversion "+id, http.StatusInternalServerError)
}

func writeArtifact(w http.ResponseWriter, artifact string, tableName string, format string, recordCount int, maxDepth int) {
	w.Header().Set("Content-Type", formatContentTypes[format])
	w.Header().Set("Content-Disposition", `attachment; filename="`+tableName+"."+format+`"`)
	w.Header().Set("X-Record-Count", strconv.Itoa(recordCount))
	w.Header().Set("X-Max-Depth", strconv.Itoa(maxDepth))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(artifact))
}

func writeError(w http.ResponseWriter, err ServiceError) {
	writeJSON(w, err.StatusCode(), errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
