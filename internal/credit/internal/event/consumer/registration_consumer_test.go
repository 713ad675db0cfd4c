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

package consumer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/event"
	creditmocks "github.com/george572/job-board-express-server-sub000/internal/credit/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistrationEventConsumer_Consume(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *creditmocks.MockService
		value   []byte
		wantErr bool
	}{
		{
			name: "开户成功",
			mock: func(ctrl *gomock.Controller) *creditmocks.MockService {
				svc := creditmocks.NewMockService(ctrl)
				svc.EXPECT().OpenAccount(gomock.Any(), int64(7)).Return(domain.Credit{
					Uid:     7,
					Balance: decimal.NewFromInt(100),
				}, nil)
				return svc
			},
			value: mustMarshal(t, event.UserRegistrationEvent{Uid: 7}),
		},
		{
			name: "消息体非法",
			mock: func(ctrl *gomock.Controller) *creditmocks.MockService {
				return creditmocks.NewMockService(ctrl)
			},
			value:   []byte("not json"),
			wantErr: true,
		},
		{
			name: "用户 ID 非法",
			mock: func(ctrl *gomock.Controller) *creditmocks.MockService {
				return creditmocks.NewMockService(ctrl)
			},
			value:   mustMarshal(t, event.UserRegistrationEvent{Uid: 0}),
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(context.Background(), event.UserRegistrationEventName, 1))
			c, err := NewRegistrationEventConsumer(tc.mock(ctrl), q)
			require.NoError(t, err)
			p, err := q.Producer(event.UserRegistrationEventName)
			require.NoError(t, err)
			_, err = p.Produce(context.Background(), &mq.Message{Value: tc.value})
			require.NoError(t, err)

			// 内存版的 MQ 大约一秒之后才会投递消息
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			err = c.Consume(ctx)
			assert.NotErrorIs(t, err, context.DeadlineExceeded)
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}

func mustMarshal(t *testing.T, v any) []byte {
	val, err := json.Marshal(v)
	require.NoError(t, err)
	return val
}
