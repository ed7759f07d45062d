package game

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const replayVersion = 1

// Replay is the ordered list of output records one game produced.
type Replay struct {
	GameID       string
	Records      []Result
	CurrentIndex int
	mu           sync.RWMutex
}

// NewReplay creates an empty replay for a game.
func NewReplay(gameID string) *Replay {
	return &Replay{
		GameID:  gameID,
		Records: make([]Result, 0),
	}
}

// Record appends output records to the replay.
func (r *Replay) Record(results ...Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Records = append(r.Records, results...)
}

// Start resets the replay to the beginning.
func (r *Replay) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.CurrentIndex = 0
}

// Next returns the record at the cursor and advances it.
func (r *Replay) Next() (Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.CurrentIndex < len(r.Records) {
		rec := r.Records[r.CurrentIndex]
		r.CurrentIndex++
		return rec, true
	}
	return Result{}, false
}

// Previous moves the cursor back and returns the record there.
func (r *Replay) Previous() (Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.CurrentIndex > 0 {
		r.CurrentIndex--
		return r.Records[r.CurrentIndex], true
	}
	return Result{}, false
}

// Skip moves the cursor by count records, clamped to the replay bounds.
func (r *Replay) Skip(count int) (Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.Records) == 0 {
		return Result{}, false
	}
	idx := r.CurrentIndex + count
	if idx >= len(r.Records) {
		idx = len(r.Records) - 1
	}
	if idx < 0 {
		idx = 0
	}
	r.CurrentIndex = idx
	return r.Records[idx], true
}

// Size returns the number of recorded results.
func (r *Replay) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.Records)
}

// At returns the record at index.
func (r *Replay) At(index int) (Result, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index >= 0 && index < len(r.Records) {
		return r.Records[index], true
	}
	return Result{}, false
}

func replayPath(directory, gameID string) string {
	return filepath.Join(directory, fmt.Sprintf("%s.replay", gameID))
}

// SaveToFile writes the replay as a gzipped protobuf Struct.
func (r *Replay) SaveToFile(directory string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := os.MkdirAll(directory, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	msg, err := r.toProto()
	if err != nil {
		return err
	}
	data, err := proto.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal replay: %w", err)
	}

	file, err := os.Create(replayPath(directory, r.GameID))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	if _, err := gzipWriter.Write(data); err != nil {
		gzipWriter.Close()
		return fmt.Errorf("failed to write replay: %w", err)
	}
	if err := gzipWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush replay: %w", err)
	}
	return nil
}

func (r *Replay) toProto() (*structpb.Struct, error) {
	// Results go through JSON first so the stored records match the output
	// format field for field.
	raw, err := json.Marshal(r.Records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode records: %w", err)
	}
	var records []any
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to encode records: %w", err)
	}

	msg, err := structpb.NewStruct(map[string]any{
		"gameId":  r.GameID,
		"version": replayVersion,
		"savedAt": time.Now().UTC().Format(time.RFC3339),
		"records": records,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build replay message: %w", err)
	}
	return msg, nil
}

// LoadReplayFromFile reads a replay written by SaveToFile.
func LoadReplayFromFile(directory, gameID string) (*Replay, error) {
	file, err := os.Open(replayPath(directory, gameID))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	data, err := io.ReadAll(gzipReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read replay: %w", err)
	}

	var msg structpb.Struct
	if err := proto.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal replay: %w", err)
	}

	fields := msg.GetFields()
	if v := int(fields["version"].GetNumberValue()); v != replayVersion {
		return nil, fmt.Errorf("unsupported replay version: %d", v)
	}

	raw, err := json.Marshal(fields["records"].AsInterface())
	if err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}

	replay := NewReplay(fields["gameId"].GetStringValue())
	if err := json.Unmarshal(raw, &replay.Records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	return replay, nil
}

// ReplayRecorder keeps replays of running games and persists finished ones.
type ReplayRecorder struct {
	logger  *zap.Logger
	mu      sync.RWMutex
	replays map[string]*Replay
	enabled map[string]bool
	saveDir string
}

// NewReplayRecorder creates a recorder that saves into saveDir.
func NewReplayRecorder(logger *zap.Logger, saveDir string) *ReplayRecorder {
	return &ReplayRecorder{
		logger:  logger,
		replays: make(map[string]*Replay),
		enabled: make(map[string]bool),
		saveDir: saveDir,
	}
}

// StartRecording begins recording a game.
func (rr *ReplayRecorder) StartRecording(gameID string) {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	rr.replays[gameID] = NewReplay(gameID)
	rr.enabled[gameID] = true

	if rr.logger != nil {
		rr.logger.Debug("started replay recording",
			zap.String("game_id", gameID),
		)
	}
}

// StopRecording stops recording a game but keeps what was recorded.
func (rr *ReplayRecorder) StopRecording(gameID string) {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	rr.enabled[gameID] = false
}

// Record appends results to a game's replay if recording is enabled.
func (rr *ReplayRecorder) Record(gameID string, results ...Result) {
	if len(results) == 0 {
		return
	}
	rr.mu.RLock()
	enabled := rr.enabled[gameID]
	replay := rr.replays[gameID]
	rr.mu.RUnlock()

	if !enabled || replay == nil {
		return
	}
	replay.Record(results...)
}

// GetReplay returns the in-memory replay for a game.
func (rr *ReplayRecorder) GetReplay(gameID string) (*Replay, bool) {
	rr.mu.RLock()
	defer rr.mu.RUnlock()

	replay, exists := rr.replays[gameID]
	return replay, exists
}

// SaveReplay writes a replay to disk and drops it from memory.
func (rr *ReplayRecorder) SaveReplay(gameID string) error {
	rr.mu.Lock()
	replay, exists := rr.replays[gameID]
	if !exists {
		rr.mu.Unlock()
		return fmt.Errorf("no replay found for game %s", gameID)
	}
	delete(rr.replays, gameID)
	delete(rr.enabled, gameID)
	rr.mu.Unlock()

	if err := replay.SaveToFile(rr.saveDir); err != nil {
		return fmt.Errorf("failed to save replay: %w", err)
	}

	if rr.logger != nil {
		rr.logger.Info("saved replay to disk",
			zap.String("game_id", gameID),
			zap.Int("record_count", replay.Size()),
			zap.String("directory", rr.saveDir),
		)
	}
	return nil
}

// LoadReplay reads a saved replay back from disk.
func (rr *ReplayRecorder) LoadReplay(gameID string) (*Replay, error) {
	return LoadReplayFromFile(rr.saveDir, gameID)
}

// ClearReplay removes a replay from memory without saving.
func (rr *ReplayRecorder) ClearReplay(gameID string) {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	delete(rr.replays, gameID)
	delete(rr.enabled, gameID)
}

// IsRecording reports whether recording is enabled for a game.
func (rr *ReplayRecorder) IsRecording(gameID string) bool {
	rr.mu.RLock()
	defer rr.mu.RUnlock()

	return rr.enabled[gameID]
}
