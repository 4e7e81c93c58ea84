package models

import (
	"time"
)

type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// TranscriptSegment is one timed caption cue, immutable once fetched.
type TranscriptSegment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Blank is a fill-in-the-blank item. Substituting Answer for the blank
// marker in Masked reconstructs the source sentence.
type Blank struct {
	Masked string `json:"masked"`
	Answer string `json:"answer"`
}

type StudyAids struct {
	Takeaways     []string `json:"takeaways"`
	OpenQuestions []string `json:"open_questions"`
	Blanks        []Blank  `json:"blanks"`
}

// Run is one user-triggered pipeline execution. It lives only long enough
// for the current result to be re-rendered or exported.
type Run struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	VideoID    string    `json:"video_id"`
	Mode       string    `json:"mode"`
	Status     Status    `json:"status"`
	Transcript string    `json:"transcript,omitempty"`
	Summary    string    `json:"summary,omitempty"`
	StudyAids  StudyAids `json:"study_aids"`
	ChunksDone int       `json:"chunks_done"`
	ChunkCount int       `json:"chunk_count"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (r *Run) IsProcessing() bool { return r.Status == StatusProcessing }
func (r *Run) IsCompleted() bool  { return r.Status == StatusCompleted }
func (r *Run) IsFailed() bool     { return r.Status == StatusFailed }

// RunResponse is the API representation of a run.
type RunResponse struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	VideoID      string    `json:"video_id"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Mode         string    `json:"mode"`
	Status       Status    `json:"status"`
	Transcript   string    `json:"transcript,omitempty"`
	Summary      string    `json:"summary,omitempty"`
	StudyAids    StudyAids `json:"study_aids"`
	ChunksDone   int       `json:"chunks_done"`
	ChunkCount   int       `json:"chunk_count"`
	Error        string    `json:"error,omitempty"`
}

func NewRunResponse(r *Run) *RunResponse {
	resp := &RunResponse{
		ID:         r.ID,
		URL:        r.URL,
		VideoID:    r.VideoID,
		Mode:       r.Mode,
		Status:     r.Status,
		Transcript: r.Transcript,
		Summary:    r.Summary,
		StudyAids:  r.StudyAids,
		ChunksDone: r.ChunksDone,
		ChunkCount: r.ChunkCount,
		Error:      r.Error,
	}
	if r.VideoID != "" {
		resp.ThumbnailURL = "https://img.youtube.com/vi/" + r.VideoID + "/hqdefault.jpg"
	}
	return resp
}
