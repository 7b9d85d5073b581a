package view

import (
	"fmt"
	"math"
	"sort"
	"time"

	"jobtrack/internal/model"
)

// Dashboard aggregates a user's applications into the numbers the landing
// page shows. It is derived purely from the input collection.
type Dashboard struct {
	JobApplications []JobApplyView `json:"job_applications"`

	TotalApplications      int `json:"total_applications"`
	PendingApplications    int `json:"pending_applications"`
	InProgressApplications int `json:"in_progress_applications"`
	AcceptedApplications   int `json:"accepted_applications"`
	RejectedApplications   int `json:"rejected_applications"`
	FinishedApplications   int `json:"finished_applications"`

	ApplicationsByStatus  map[model.JobStatus]int `json:"applications_by_status"`
	ApplicationsByCountry map[string]int          `json:"applications_by_country"`

	SuccessRate  float64 `json:"success_rate"`
	ResponseRate float64 `json:"response_rate"`

	RecentApplications []JobApplyView `json:"recent_applications"`
	WaitingForResponse []JobApplyView `json:"waiting_for_response"`

	HasApplications bool   `json:"has_applications"`
	SummaryMessage  string `json:"summary_message"`
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// NewDashboard computes the dashboard aggregate. now anchors the recency
// window of RecentApplications.
func NewDashboard(jobs []model.JobApply, now time.Time) Dashboard {
	views := NewJobApplyViews(jobs, now)

	d := Dashboard{
		JobApplications:       views,
		TotalApplications:     len(views),
		ApplicationsByStatus:  make(map[model.JobStatus]int),
		ApplicationsByCountry: make(map[string]int),
	}

	for _, v := range views {
		d.ApplicationsByStatus[v.Status]++
		d.ApplicationsByCountry[v.CompanyCountry]++
	}

	d.PendingApplications = d.ApplicationsByStatus[model.StatusApplied] +
		d.ApplicationsByStatus[model.StatusWaitingResponse] +
		d.ApplicationsByStatus[model.StatusWaitingJobOffer]
	d.InProgressApplications = d.ApplicationsByStatus[model.StatusInProgress]
	d.AcceptedApplications = d.ApplicationsByStatus[model.StatusAccepted]
	d.RejectedApplications = d.ApplicationsByStatus[model.StatusDenied] +
		d.ApplicationsByStatus[model.StatusFailed]
	d.FinishedApplications = d.AcceptedApplications + d.RejectedApplications

	if d.TotalApplications > 0 {
		total := float64(d.TotalApplications)
		d.SuccessRate = round1(float64(d.AcceptedApplications) / total * 100)
		d.ResponseRate = round1(float64(d.FinishedApplications) / total * 100)
	}

	for _, v := range views {
		if v.IsRecent {
			d.RecentApplications = append(d.RecentApplications, v)
		}
		if v.Status == model.StatusWaitingResponse || v.Status == model.StatusWaitingJobOffer {
			d.WaitingForResponse = append(d.WaitingForResponse, v)
		}
	}
	sortByDateDesc(d.RecentApplications)
	sortByDateDesc(d.WaitingForResponse)

	d.HasApplications = d.TotalApplications > 0
	d.SummaryMessage = d.summary()
	return d
}

func sortByDateDesc(views []JobApplyView) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].DateOfApply.After(views[j].DateOfApply)
	})
}

func (d Dashboard) summary() string {
	if d.TotalApplications == 0 {
		return "You haven't added any job applications yet. Start by adding your first application!"
	}
	if open := d.PendingApplications + d.InProgressApplications; open > 0 {
		return fmt.Sprintf("You have %d application(s) in progress. Keep up the great work!", open)
	}
	return fmt.Sprintf("You have %d total applications with a %.1f%% success rate.", d.TotalApplications, d.SuccessRate)
}
