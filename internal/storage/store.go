package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
)

type Store struct {
	baseDir string
	clock   clockwork.Clock
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, clock: clockwork.NewRealClock()}
}

// WithClock swaps the clock used for render ids and timestamps.
func (s *Store) WithClock(c clockwork.Clock) *Store {
	s.clock = c
	return s
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RenderMetadata struct {
	ID         string        `json:"id"`
	Chart      string        `json:"chart"`
	Timestamp  time.Time     `json:"timestamp"`
	Seed       int64         `json:"seed"`
	Frames     int           `json:"frames"`
	Labels     string        `json:"labels"`
	Output     string        `json:"output"`
	Primitives int           `json:"primitives"`
	Points     int           `json:"points"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

// FrameRow is one line of frames.csv.
type FrameRow struct {
	Frame      int     `json:"frame"`
	Primitives int     `json:"primitives"`
	Points     int     `json:"points"`
	Progress   float64 `json:"mean_progress"`
}

var csvHeader = []string{"frame", "primitives", "points", "mean_progress"}

// Save writes metadata.json and frames.csv under a new <chart>_<unix> directory.
// ID and Timestamp are filled in and returned.
func (s *Store) Save(meta RenderMetadata, rows []FrameRow) (string, error) {
	now := s.clock.Now()
	renderID := fmt.Sprintf("%s_%d", meta.Chart, now.Unix())
	renderDir := filepath.Join(s.baseDir, renderID)
	for n := 2; exists(renderDir); n++ {
		renderID = fmt.Sprintf("%s_%d_%d", meta.Chart, now.Unix(), n)
		renderDir = filepath.Join(s.baseDir, renderID)
	}

	if err := os.MkdirAll(renderDir, 0755); err != nil {
		return "", err
	}

	meta.ID = renderID
	meta.Timestamp = now

	metaFile, err := os.Create(filepath.Join(renderDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(renderDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Frame),
			strconv.Itoa(r.Primitives),
			strconv.Itoa(r.Points),
			strconv.FormatFloat(r.Progress, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return renderID, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// List returns all readable renders, oldest first.
func (s *Store) List() ([]RenderMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RenderMetadata{}, nil
		}
		return nil, err
	}

	renders := make([]RenderMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		renders = append(renders, *meta)
	}

	sort.SliceStable(renders, func(i, j int) bool {
		return renders[i].Timestamp.Before(renders[j].Timestamp)
	})
	return renders, nil
}

func (s *Store) Load(renderID string) (*RenderMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, renderID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RenderMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadFrames(renderID string) ([]FrameRow, error) {
	file, err := os.Open(filepath.Join(s.baseDir, renderID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(csvHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []FrameRow{}, nil
	}

	rows := make([]FrameRow, 0, len(records)-1)
	for _, record := range records[1:] {
		var row FrameRow
		var perr error
		if row.Frame, perr = strconv.Atoi(record[0]); perr != nil {
			continue
		}
		if row.Primitives, perr = strconv.Atoi(record[1]); perr != nil {
			continue
		}
		if row.Points, perr = strconv.Atoi(record[2]); perr != nil {
			continue
		}
		if row.Progress, perr = strconv.ParseFloat(record[3], 64); perr != nil {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}
