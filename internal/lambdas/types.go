package lambdas

// JobRequest is the input the job lambda receives
type JobRequest struct {
	Arguments map[string]string `json:"arguments"`
}

// JobResponse is the output of the job lambda
type JobResponse struct {
	JobName string `json:"jobName"`
	RunID   string `json:"runId"`
	Output  string `json:"output"`
}
