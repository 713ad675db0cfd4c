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
	"testing"
	"time"

	"github.com/george572/job-board-express-server-sub000/internal/ai"
	aimocks "github.com/george572/job-board-express-server-sub000/internal/ai/mocks"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
	repomocks "github.com/george572/job-board-express-server-sub000/internal/discovery/internal/repository/mocks"
	searchmocks "github.com/george572/job-board-express-server-sub000/internal/search/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var profileCfg = ProfileConfig{
	Namespaces: map[domain.CandidateKind]string{
		domain.CandidateKindCV:   "cv",
		domain.CandidateKindForm: "form",
	},
	EmbedTimeout: time.Second,
	IndexTimeout: time.Second,
}

func TestProfileService_Sync(t *testing.T) {
	vec := []float32{0.5, 0.5}
	testCases := []struct {
		name    string
		profile domain.CandidateProfile
		mock    func(repo *repomocks.MockCandidateRepository, embedder *aimocks.MockEmbedder, index *searchmocks.MockVectorIndex)
		wantErr error
	}{
		{
			name:    "写库并按 passage 模式建索引",
			profile: domain.CandidateProfile{ID: " form_5 ", Name: "Giorgi", Text: "barista 2 years"},
			mock: func(repo *repomocks.MockCandidateRepository, embedder *aimocks.MockEmbedder, index *searchmocks.MockVectorIndex) {
				gomock.InOrder(
					repo.EXPECT().Save(gomock.Any(), domain.CandidateProfile{
						ID: "form_5", Kind: domain.CandidateKindForm, Name: "Giorgi", Text: "barista 2 years",
					}).Return(nil),
					embedder.EXPECT().Embed(gomock.Any(), []string{"barista 2 years"}, ai.EmbedModePassage).
						Return([][]float32{vec}, nil),
					index.EXPECT().Upsert(gomock.Any(), "form", "form_5", vec, map[string]string{
						"name": "Giorgi", "text": "barista 2 years", "kind": "form",
					}).Return(nil),
				)
			},
		},
		{
			name:    "没有文本删除旧向量",
			profile: domain.CandidateProfile{ID: "8", Kind: domain.CandidateKindCV, Text: "  "},
			mock: func(repo *repomocks.MockCandidateRepository, embedder *aimocks.MockEmbedder, index *searchmocks.MockVectorIndex) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				index.EXPECT().Delete(gomock.Any(), "cv", "8").Return(nil)
			},
		},
		{
			name:    "向量化失败",
			profile: domain.CandidateProfile{ID: "8", Text: "cook"},
			mock: func(repo *repomocks.MockCandidateRepository, embedder *aimocks.MockEmbedder, index *searchmocks.MockVectorIndex) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				embedder.EXPECT().Embed(gomock.Any(), gomock.Any(), ai.EmbedModePassage).
					Return(nil, errors.New("mock embedding error"))
			},
			wantErr: ErrUpstream,
		},
		{
			name:    "类型和 ID 不一致",
			profile: domain.CandidateProfile{ID: "9", Kind: domain.CandidateKindForm, Text: "cook"},
			mock: func(repo *repomocks.MockCandidateRepository, embedder *aimocks.MockEmbedder, index *searchmocks.MockVectorIndex) {
			},
			wantErr: ErrInvalidProfile,
		},
		{
			name:    "缺少 ID",
			profile: domain.CandidateProfile{Text: "cook"},
			mock: func(repo *repomocks.MockCandidateRepository, embedder *aimocks.MockEmbedder, index *searchmocks.MockVectorIndex) {
			},
			wantErr: ErrInvalidProfile,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockCandidateRepository(ctrl)
			embedder := aimocks.NewMockEmbedder(ctrl)
			index := searchmocks.NewMockVectorIndex(ctrl)
			tc.mock(repo, embedder, index)
			err := NewProfileService(repo, embedder, index, profileCfg).Sync(context.Background(), tc.profile)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestProfileService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockCandidateRepository(ctrl)
	index := searchmocks.NewMockVectorIndex(ctrl)
	gomock.InOrder(
		repo.EXPECT().Delete(gomock.Any(), "form_2").Return(nil),
		index.EXPECT().Delete(gomock.Any(), "form", "form_2").Return(nil),
	)
	svc := NewProfileService(repo, aimocks.NewMockEmbedder(ctrl), index, profileCfg)
	assert.NoError(t, svc.Remove(context.Background(), "form_2"))
	assert.ErrorIs(t, svc.Remove(context.Background(), " "), ErrInvalidProfile)
}
