package report

const DefaultMaxResults = 500

// TruncatedID marks the synthetic row appended by Truncate.
const TruncatedID = "RESULT-TRUNC"

// Truncate caps the result list. When it exceeds limit, it is cut and a
// synthetic N/A row noting the truncation is appended. The summary is not
// recomputed; it still counts every case. A limit of 0 or less disables
// truncation.
func Truncate(r *Report, limit int) {
	if limit <= 0 || len(r.Results) <= limit {
		return
	}
	if limit == 1 {
		r.Results = r.Results[:0]
	} else {
		r.Results = r.Results[:limit-1]
	}
	r.Results = append(r.Results, Result{
		ID:     TruncatedID,
		Label:  "Output truncated",
		Status: StatusNA,
		Detail: "The number of results exceeded the configured limit. Re-run with a higher --max-results to see all of them.",
	})
}
