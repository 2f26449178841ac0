package types

import "testing"

func TestReportApplyScore(t *testing.T) {
	t.Run("two sequential scores", func(t *testing.T) {
		report := Report{PatientID: "p1"}
		report.ApplyScore("", 80)
		report.ApplyScore("", 60)

		if report.Count != 2 || report.Sum != 140 {
			t.Errorf("unexpected aggregate: count=%d sum=%d", report.Count, report.Sum)
		}
		if report.AvgRecall != 70 {
			t.Errorf("unexpected avg: %d", report.AvgRecall)
		}
	})

	t.Run("per-photo breakdown", func(t *testing.T) {
		report := Report{PatientID: "p1"}
		report.ApplyScore("photo1", 100)
		report.ApplyScore("photo1", 50)
		report.ApplyScore("photo2", 40)

		entry := report.Photos["photo1"]
		if entry.Count != 2 || entry.Sum != 150 || entry.Avg != 75 {
			t.Errorf("unexpected photo1 entry: %+v", entry)
		}
		if report.Photos["photo2"].Avg != 40 {
			t.Errorf("unexpected photo2 entry: %+v", report.Photos["photo2"])
		}
		if report.Count != 3 || report.Sum != 190 {
			t.Errorf("unexpected aggregate: count=%d sum=%d", report.Count, report.Sum)
		}
		// 190/3 rounds to 63
		if report.AvgRecall != 63 {
			t.Errorf("unexpected avg: %d", report.AvgRecall)
		}
	})
}
