package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiresight/talentd/internal/db"
	"github.com/hiresight/talentd/internal/types"
)

func authedRequest(method, path, token string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func parsedJob(companyID uuid.UUID) *db.Job {
	return &db.Job{
		ID:        uuid.New(),
		CompanyID: companyID,
		Title:     "Senior Backend Engineer",
		Requirement: &types.RequirementProfile{
			Title:           "Senior Backend Engineer",
			MandatorySkills: []string{"python", "fastapi"},
			Seniority:       "senior",
		},
	}
}

func TestComputeMatches_UnknownJobIs404(t *testing.T) {
	s, token := newTestServer(t, &fakeStore{})

	rec := doRequest(s, authedRequest(http.MethodPost, "/matches/compute/"+uuid.NewString(), token, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestComputeMatches_InvalidJobIDIs400(t *testing.T) {
	s, token := newTestServer(t, &fakeStore{})

	rec := doRequest(s, authedRequest(http.MethodPost, "/matches/compute/not-a-uuid", token, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComputeMatches_OtherTenantsJobLooksMissing(t *testing.T) {
	job := parsedJob(uuid.New()) // belongs to a different company
	s, token := newTestServer(t, &fakeStore{job: job})

	rec := doRequest(s, authedRequest(http.MethodPost, "/matches/compute/"+job.ID.String(), token, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestComputeMatches_UnparsedJobIs400(t *testing.T) {
	job := &db.Job{ID: uuid.New(), CompanyID: testCompanyID, Title: "Engineer"}
	s, token := newTestServer(t, &fakeStore{job: job})

	rec := doRequest(s, authedRequest(http.MethodPost, "/matches/compute/"+job.ID.String(), token, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no parsed requirements")
}

func TestComputeMatches_EmptyPoolIs400(t *testing.T) {
	job := parsedJob(testCompanyID)
	s, token := newTestServer(t, &fakeStore{job: job})

	rec := doRequest(s, authedRequest(http.MethodPost, "/matches/compute/"+job.ID.String(), token, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no candidates")
}

func TestComputeMatches_StoresRankedResults(t *testing.T) {
	job := parsedJob(testCompanyID)
	store := &fakeStore{
		job: job,
		candidates: []types.CandidateProfile{
			{ID: uuid.New(), Name: "A", Skills: []string{"python", "fastapi"}, ExperienceYears: 6, Seniority: "senior"},
			{ID: uuid.New(), Name: "B", Skills: []string{"cobol"}},
		},
	}
	s, token := newTestServer(t, store)

	rec := doRequest(s, authedRequest(http.MethodPost, "/matches/compute/"+job.ID.String(), token, nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var summary computeSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, job.ID, summary.JobID)
	assert.Equal(t, 2, summary.CandidatesEvaluated)
	assert.Equal(t, 2, summary.MatchesStored)
	assert.Greater(t, summary.TopScore, 0.0)

	stored := store.replaced[job.ID]
	require.Len(t, stored, 2)
	assert.Equal(t, store.candidates[0].ID, stored[0].CandidateID, "stronger candidate ranked first")
}

func TestMatchResults_ReturnsStoredMatches(t *testing.T) {
	job := parsedJob(testCompanyID)
	store := &fakeStore{
		job: job,
		matches: []types.MatchResult{
			{CandidateID: uuid.New(), OverallScore: 88.5, Confidence: 75},
		},
	}
	s, token := newTestServer(t, store)

	rec := doRequest(s, authedRequest(http.MethodGet, "/matches/"+job.ID.String()+"/results", token, nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		JobID   uuid.UUID           `json:"job_id"`
		Results []types.MatchResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, job.ID, body.JobID)
	require.Len(t, body.Results, 1)
	assert.Equal(t, 88.5, body.Results[0].OverallScore)
}

func TestMatchResults_EmptyIsAnArrayNotNull(t *testing.T) {
	job := parsedJob(testCompanyID)
	s, token := newTestServer(t, &fakeStore{job: job})

	rec := doRequest(s, authedRequest(http.MethodGet, "/matches/"+job.ID.String()+"/results", token, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"results":[]`)
}

func TestAdHocMatch_ReturnsRankedResults(t *testing.T) {
	s, token := newTestServer(t, &fakeStore{})

	payload, err := json.Marshal(types.MatchRequest{
		Requirement: &types.RequirementProfile{
			Title:           "Go Developer",
			MandatorySkills: []string{"go"},
		},
		Candidates: []types.CandidateProfile{
			{ID: uuid.New(), Name: "weak", Skills: []string{"php"}},
			{ID: uuid.New(), Name: "strong", Skills: []string{"go"}, ExperienceYears: 5},
		},
	})
	require.NoError(t, err)

	rec := doRequest(s, authedRequest(http.MethodPost, "/match", token, payload))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results []types.MatchResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Results, 2)
	assert.GreaterOrEqual(t, body.Results[0].OverallScore, body.Results[1].OverallScore)
	assert.Len(t, body.Results[0].Explanation, 8)
}

func TestAdHocMatch_RejectsInvalidBody(t *testing.T) {
	s, token := newTestServer(t, &fakeStore{})

	rec := doRequest(s, authedRequest(http.MethodPost, "/match", token, []byte("{not json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Valid JSON, but no candidates
	rec = doRequest(s, authedRequest(http.MethodPost, "/match", token,
		[]byte(`{"requirement":{"title":"Engineer"},"candidates":[]}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation error")
}
