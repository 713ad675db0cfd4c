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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./candidate.go -destination=../mocks/candidate_dao.mock.go -package=repomocks CandidateDAO
type CandidateDAO interface {
	// Upsert ID 冲突时覆盖资料
	Upsert(ctx context.Context, c Candidate) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (Candidate, error)
	FindByIDs(ctx context.Context, ids []string) ([]Candidate, error)
}

type candidateDAO struct {
	db *egorm.Component
}

func NewCandidateGORMDAO(db *egorm.Component) CandidateDAO {
	return &candidateDAO{db: db}
}

func (d *candidateDAO) Upsert(ctx context.Context, c Candidate) error {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"kind", "name", "email", "phone", "profile_url", "profile_text", "utime",
		}),
	}).Create(&c).Error
}

func (d *candidateDAO) Delete(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&Candidate{}).Error
}

func (d *candidateDAO) FindByID(ctx context.Context, id string) (Candidate, error) {
	var res Candidate
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *candidateDAO) FindByIDs(ctx context.Context, ids []string) ([]Candidate, error) {
	var res []Candidate
	if len(ids) == 0 {
		return res, nil
	}
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

type Candidate struct {
	// 表单候选人的 ID 是 form_ 开头的合成 ID
	Id          string `gorm:"primaryKey;type:varchar(64);comment:候选人ID"`
	Kind        string `gorm:"type:varchar(16);not null;comment:cv 或 form"`
	Name        string `gorm:"type:varchar(255);not null;default:''"`
	Email       string `gorm:"type:varchar(255);not null;default:''"`
	Phone       string `gorm:"type:varchar(64);not null;default:''"`
	ProfileUrl  string `gorm:"type:varchar(512);not null;default:''"`
	ProfileText string `gorm:"type:text;comment:简历或表单的纯文本"`
	Ctime       int64
	Utime       int64
}

func (Candidate) TableName() string {
	return "candidates"
}
