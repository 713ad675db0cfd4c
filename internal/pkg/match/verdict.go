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

package match

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownVerdict  = errors.New("未知的匹配结论")
	ErrUnknownStrength = errors.New("未知的匹配强度")
)

// Verdict 大模型对候选人与岗位匹配程度的分级结论
type Verdict uint8

const (
	VerdictUnknown Verdict = iota
	VerdictStrong
	VerdictGood
	VerdictPartial
	VerdictWeak
)

const (
	strongThreshold  = 80
	goodThreshold    = 60
	partialThreshold = 40
)

func ParseVerdict(s string) (Verdict, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "STRONG_MATCH":
		return VerdictStrong, nil
	case "GOOD_MATCH":
		return VerdictGood, nil
	case "PARTIAL_MATCH":
		return VerdictPartial, nil
	case "WEAK_MATCH":
		return VerdictWeak, nil
	default:
		return VerdictUnknown, fmt.Errorf("%w: %q", ErrUnknownVerdict, s)
	}
}

// VerdictFromScore 大模型没有给出合法结论时，按分数推导
func VerdictFromScore(score int) Verdict {
	switch {
	case score >= strongThreshold:
		return VerdictStrong
	case score >= goodThreshold:
		return VerdictGood
	case score >= partialThreshold:
		return VerdictPartial
	default:
		return VerdictWeak
	}
}

func (v Verdict) String() string {
	switch v {
	case VerdictStrong:
		return "STRONG_MATCH"
	case VerdictGood:
		return "GOOD_MATCH"
	case VerdictPartial:
		return "PARTIAL_MATCH"
	case VerdictWeak:
		return "WEAK_MATCH"
	default:
		return "UNKNOWN"
	}
}

func (v Verdict) Valid() bool {
	return v >= VerdictStrong && v <= VerdictWeak
}

// Rank 越小越靠前
func (v Verdict) Rank() int {
	if !v.Valid() {
		return int(VerdictWeak) + 1
	}
	return int(v)
}

// Strength 调用方要求的匹配强度
type Strength string

const (
	StrengthStrong  Strength = "strong"
	StrengthGood    Strength = "good"
	StrengthPartial Strength = "partial"
)

func ParseStrength(s string) (Strength, error) {
	st := Strength(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StrengthStrong, StrengthGood, StrengthPartial:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrength, s)
	}
}

// Allowed 每个强度只对应一个结论，不是累加的
func (s Strength) Allowed() Verdict {
	switch s {
	case StrengthStrong:
		return VerdictStrong
	case StrengthGood:
		return VerdictGood
	case StrengthPartial:
		return VerdictPartial
	default:
		return VerdictUnknown
	}
}

// TierFirst partial 的结果集里结论都一样，按分数排才有区分度
func (s Strength) TierFirst() bool {
	return s == StrengthStrong || s == StrengthGood
}
