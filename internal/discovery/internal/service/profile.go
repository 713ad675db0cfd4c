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
	"strings"
	"time"

	"github.com/george572/job-board-express-server-sub000/internal/ai"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/repository"
	"github.com/george572/job-board-express-server-sub000/internal/search"
	"github.com/gotomicro/ego/core/elog"
)

// maxExcerptRunes 索引里面只存简历的前面一部分
const maxExcerptRunes = 4000

var ErrInvalidProfile = errors.New("候选人资料非法")

type ProfileConfig struct {
	Namespaces   map[domain.CandidateKind]string
	EmbedTimeout time.Duration
	IndexTimeout time.Duration
}

//go:generate mockgen -source=./profile.go -destination=../../mocks/profile.mock.go -package=discoverymocks ProfileService
type ProfileService interface {
	// Sync 写库、删缓存，再用 passage 模式向量化写入索引
	Sync(ctx context.Context, p domain.CandidateProfile) error
	Remove(ctx context.Context, id string) error
}

type profileService struct {
	repo     repository.CandidateRepository
	embedder ai.Embedder
	index    search.VectorIndex
	cfg      ProfileConfig
	logger   *elog.Component
}

func NewProfileService(repo repository.CandidateRepository,
	embedder ai.Embedder,
	index search.VectorIndex,
	cfg ProfileConfig) ProfileService {
	return &profileService{
		repo:     repo,
		embedder: embedder,
		index:    index,
		cfg:      cfg,
		logger:   elog.DefaultLogger,
	}
}

func (s *profileService) Sync(ctx context.Context, p domain.CandidateProfile) error {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return fmt.Errorf("%w: 缺少 ID", ErrInvalidProfile)
	}
	// 类型以 ID 为准，删除的时候只有 ID
	kind := domain.KindOf(p.ID)
	if p.Kind.Valid() && p.Kind != kind {
		return fmt.Errorf("%w: 类型 %s 和 ID %s 不一致", ErrInvalidProfile, p.Kind, p.ID)
	}
	p.Kind = kind
	ns, err := s.namespace(p.Kind)
	if err != nil {
		return err
	}
	if err = s.repo.Save(ctx, p); err != nil {
		return fmt.Errorf("保存候选人资料失败: %w", err)
	}
	text := strings.TrimSpace(p.Text)
	if text == "" {
		// 没有可检索的内容，旧向量也要删掉
		return s.deleteVector(ctx, ns, p.ID)
	}

	ectx, cancel := withTimeout(ctx, s.cfg.EmbedTimeout)
	defer cancel()
	vectors, err := s.embedder.Embed(ectx, []string{text}, ai.EmbedModePassage)
	if err != nil {
		return fmt.Errorf("%w: 候选人向量化失败: %w", ErrUpstream, err)
	}
	if len(vectors) != 1 {
		return fmt.Errorf("%w: 候选人向量数量 %d", ErrUpstream, len(vectors))
	}

	ictx, icancel := withTimeout(ctx, s.cfg.IndexTimeout)
	defer icancel()
	err = s.index.Upsert(ictx, ns, p.ID, vectors[0], map[string]string{
		metaName: p.Name,
		metaText: excerpt(text),
		metaKind: string(p.Kind),
	})
	if err != nil {
		return fmt.Errorf("%w: 写入向量索引失败: %w", ErrUpstream, err)
	}
	s.logger.Info("同步候选人资料", elog.String("candidateID", p.ID), elog.String("namespace", ns))
	return nil
}

func (s *profileService) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: 缺少 ID", ErrInvalidProfile)
	}
	ns, err := s.namespace(domain.KindOf(id))
	if err != nil {
		return err
	}
	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("删除候选人资料失败: %w", err)
	}
	return s.deleteVector(ctx, ns, id)
}

func (s *profileService) deleteVector(ctx context.Context, ns, id string) error {
	ctx, cancel := withTimeout(ctx, s.cfg.IndexTimeout)
	defer cancel()
	if err := s.index.Delete(ctx, ns, id); err != nil {
		return fmt.Errorf("%w: 删除向量失败: %w", ErrUpstream, err)
	}
	return nil
}

func (s *profileService) namespace(kind domain.CandidateKind) (string, error) {
	ns, ok := s.cfg.Namespaces[kind]
	if !ok || ns == "" {
		return "", fmt.Errorf("%w: 没有配置 %s 的命名空间", ErrInvalidProfile, kind)
	}
	return ns, nil
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= maxExcerptRunes {
		return text
	}
	return string(runes[:maxExcerptRunes])
}
