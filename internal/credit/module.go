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

package credit

import "github.com/george572/job-board-express-server-sub000/internal/credit/internal/event/consumer"

type Module struct {
	Svc          Service
	Pricing      *Pricing
	Hdl          *Handler
	ReconcileJob *LedgerReconcileJob
	c            *consumer.RegistrationEventConsumer
}
