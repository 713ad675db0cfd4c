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
	"context"
	"errors"
	"fmt"

	"github.com/george572/job-board-express-server-sub000/internal/credit"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/repository"
)

//go:generate mockgen -source=./unlock.go -destination=../../mocks/unlock.mock.go -package=discoverymocks UnlockService
type UnlockService interface {
	// Unlock 联系方式以候选人资料为准，资料不存在时才使用前端提交的内容
	Unlock(ctx context.Context, uid int64, req domain.UnlockCandidate) (credit.UnlockResult, error)
}

type unlockService struct {
	profiles repository.CandidateRepository
	credits  credit.Service
}

func NewUnlockService(profiles repository.CandidateRepository, credits credit.Service) UnlockService {
	return &unlockService{
		profiles: profiles,
		credits:  credits,
	}
}

func (s *unlockService) Unlock(ctx context.Context, uid int64, req domain.UnlockCandidate) (credit.UnlockResult, error) {
	unlock := credit.UnlockRequest{
		Uid:         uid,
		JobName:     req.JobName,
		CandidateID: req.CandidateID,
		Verdict:     req.Verdict,
		FullName:    req.Name,
		Contact:     req.Contact,
		ProfileURL:  req.ProfileURL,
		Summary:     req.Summary,
	}
	if req.CandidateID != "" {
		p, err := s.profiles.FindByID(ctx, req.CandidateID)
		switch {
		case err == nil:
			unlock.FullName = firstNonEmpty(p.Name, req.Name)
			unlock.Contact = firstNonEmpty(p.Contact(), req.Contact)
			unlock.ProfileURL = firstNonEmpty(p.ProfileURL, req.ProfileURL)
		case errors.Is(err, repository.ErrCandidateNotFound):
		default:
			return credit.UnlockResult{}, fmt.Errorf("查询候选人资料失败: %w", err)
		}
	}
	return s.credits.Unlock(ctx, unlock)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
