// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package assessor

import (
	"fmt"
	"strings"

	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
)

const systemPrompt = `You are an experienced recruiter who evaluates how well a candidate profile fits a job.
Score the fit from 0 to 100 using this weighting:
- skills and work experience match: 50%
- seniority and experience level fit: 25%
- industry relevance: 15%
- education and soft factors: 10%
Hard rule: if the candidate clearly lacks a mandatory requirement of the job, the score must not exceed 30, regardless of other factors.
Verdict thresholds: 80-100 STRONG_MATCH, 60-79 GOOD_MATCH, 40-59 PARTIAL_MATCH, 0-39 WEAK_MATCH.
Base every judgement only on the provided text and do not assume experience that is not written.
The profile may be written in Georgian or English; answer in the language of the job description.
Return only one JSON object, without markdown or any text around it:
{"fit_score": <integer 0-100>, "summary": "<two or three sentences for the employer>", "verdict": "STRONG_MATCH|GOOD_MATCH|PARTIAL_MATCH|WEAK_MATCH"}`

// maxProfileRunes 简历太长时截断，控制 token
const maxProfileRunes = 6000

func buildPrompt(job domain.JobQuery, profile string) string {
	var sb strings.Builder
	sb.WriteString("JOB\n")
	writeField(&sb, "Title", job.Title)
	writeField(&sb, "Description", job.Description)
	writeField(&sb, "Required experience", job.Experience)
	writeField(&sb, "Employment type", job.EmploymentType)
	writeField(&sb, "City", job.City)
	sb.WriteString("\nCANDIDATE PROFILE\n")
	sb.WriteString(truncate(strings.TrimSpace(profile), maxProfileRunes))
	return sb.String()
}

func writeField(sb *strings.Builder, label, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	_, _ = fmt.Fprintf(sb, "%s: %s\n", label, value)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
