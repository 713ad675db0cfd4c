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

package service

import (
	"errors"
	"fmt"

	"github.com/george572/job-board-express-server-sub000/internal/pkg/match"
	"github.com/shopspring/decimal"
)

var (
	ErrUnpriceableVerdict = errors.New("该匹配结论无法定价")
	ErrInvalidPricing     = errors.New("解锁价格配置非法")
)

// Pricing 解锁价格，按匹配结论分档
type Pricing struct {
	costs map[match.Verdict]decimal.Decimal
}

// NewPricing 要求 strong >= good >= partial > 0
func NewPricing(strong, good, partial decimal.Decimal) (*Pricing, error) {
	if !partial.IsPositive() || good.LessThan(partial) || strong.LessThan(good) {
		return nil, fmt.Errorf("%w: strong=%s good=%s partial=%s", ErrInvalidPricing, strong, good, partial)
	}
	return &Pricing{
		costs: map[match.Verdict]decimal.Decimal{
			match.VerdictStrong:  strong.Round(2),
			match.VerdictGood:    good.Round(2),
			match.VerdictPartial: partial.Round(2),
		},
	}, nil
}

func DefaultPricing() *Pricing {
	p, _ := NewPricing(decimal.NewFromInt(2), decimal.NewFromInt(1), decimal.RequireFromString("0.5"))
	return p
}

func (p *Pricing) Cost(v match.Verdict) (decimal.Decimal, error) {
	cost, ok := p.costs[v]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnpriceableVerdict, v)
	}
	return cost, nil
}
