package types

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PhotoReportEntry is the per-photo breakdown inside a patient report.
type PhotoReportEntry struct {
	Count int64 `bson:"count" json:"count"`
	Sum   int64 `bson:"sum" json:"sum"`
	Avg   int64 `bson:"avg" json:"avg"`
}

// Report is the running recall aggregate for one patient. It is only
// ever mutated through ApplyScore inside a store transaction, count and
// sum grow monotonically and avgRecall = round(sum/count) at all times.
type Report struct {
	ID        primitive.ObjectID          `bson:"_id,omitempty" json:"id,omitempty"`
	PatientID string                      `bson:"patientID" json:"patientID"`
	Count     int64                       `bson:"count" json:"count"`
	Sum       int64                       `bson:"sum" json:"sum"`
	AvgRecall int64                       `bson:"avgRecall" json:"avgRecall"`
	Photos    map[string]PhotoReportEntry `bson:"photos,omitempty" json:"photos,omitempty"`
	UpdatedAt time.Time                   `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ApplyScore folds a new score percentage (0-100) into the aggregate,
// updating the per-photo breakdown when a photoID is given.
func (r *Report) ApplyScore(photoID string, scorePct int64) {
	r.Count++
	r.Sum += scorePct
	r.AvgRecall = roundedAvg(r.Sum, r.Count)

	if photoID == "" {
		return
	}
	if r.Photos == nil {
		r.Photos = map[string]PhotoReportEntry{}
	}
	entry := r.Photos[photoID]
	entry.Count++
	entry.Sum += scorePct
	entry.Avg = roundedAvg(entry.Sum, entry.Count)
	r.Photos[photoID] = entry
}

func roundedAvg(sum int64, count int64) int64 {
	if count < 1 {
		return 0
	}
	return int64(math.Round(float64(sum) / float64(count)))
}
