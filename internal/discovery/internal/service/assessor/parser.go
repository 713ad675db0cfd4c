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
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/pkg/match"
)

var ErrUnparseable = errors.New("无法解析评估结果")

var (
	scorePattern   = regexp.MustCompile(`(?i)"?fit_score"?\s*[:=]\s*"?(-?\d+(?:\.\d+)?)`)
	summaryPattern = regexp.MustCompile(`(?is)"?summary"?\s*[:=]\s*"((?:[^"\\]|\\.)*)"`)
	verdictPattern = regexp.MustCompile(`(?i)\b(STRONG|GOOD|PARTIAL|WEAK)_MATCH\b`)
)

type rawAssessment struct {
	FitScore json.RawMessage `json:"fit_score"`
	Summary  string          `json:"summary"`
	Verdict  string          `json:"verdict"`
}

// Parse 先按 JSON 解析，失败再用正则兜底，不会 panic
func Parse(answer string) (domain.AssessmentResult, error) {
	block := extractObject(stripFences(answer))
	if block != "" {
		var raw rawAssessment
		if err := json.Unmarshal([]byte(block), &raw); err == nil {
			if score, ok := parseScore(string(raw.FitScore)); ok {
				return newResult(score, raw.Summary, raw.Verdict), nil
			}
		}
	}
	return parseLoose(answer)
}

func parseLoose(answer string) (domain.AssessmentResult, error) {
	m := scorePattern.FindStringSubmatch(answer)
	if m == nil {
		return domain.AssessmentResult{}, ErrUnparseable
	}
	score, ok := parseScore(m[1])
	if !ok {
		return domain.AssessmentResult{}, ErrUnparseable
	}
	var summary, verdict string
	if sm := summaryPattern.FindStringSubmatch(answer); sm != nil {
		summary = unescape(sm[1])
	}
	if vm := verdictPattern.FindString(answer); vm != "" {
		verdict = vm
	}
	return newResult(score, summary, verdict), nil
}

// newResult 分数限制在 0-100，结论非法时按分数推导
func newResult(score int, summary, verdict string) domain.AssessmentResult {
	score = max(0, min(100, score))
	v, err := match.ParseVerdict(verdict)
	if err != nil {
		v = match.VerdictFromScore(score)
	}
	return domain.AssessmentResult{
		FitScore: score,
		Summary:  strings.TrimSpace(summary),
		Verdict:  v,
	}
}

func parseScore(s string) (int, bool) {
	s = strings.Trim(strings.TrimSpace(s), `"`)
	if s == "" || s == "null" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	// 先在浮点上截断，超大的数转 int 会溢出
	return int(math.Round(math.Max(0, math.Min(100, f)))), true
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// extractObject 找到第一个完整的 {...}，字符串里面的括号不计数
func extractObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth, inString, escaped := 0, false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

func unescape(s string) string {
	res, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return s
	}
	return res
}
