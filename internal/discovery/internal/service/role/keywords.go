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

package role

// 格鲁吉亚语有变格，关键词按词首匹配，所以这里多数写的是词干

// basicKeywords 不挑专业背景的岗位：服务、零售、行政、客服等
var basicKeywords = []string{
	// 餐饮
	"waiter", "waitress", "server", "bartender", "barman", "barista", "hostess",
	"dishwasher", "kitchen helper", "kitchen assistant",
	"ოფიციანტ", "მიმტან", "ბარმენ", "ბარისტა", "ჭურჭლის მრეცხავ", "მზარეულის დამხმარე",
	// 零售
	"cashier", "seller", "sales assistant", "sales consultant", "shop assistant", "promoter", "merchandiser",
	"მოლარე", "გამყიდველ", "კონსულტანტ", "პრომოუტერ", "მერჩენდაიზერ",
	// 行政、前台
	"receptionist", "front desk", "administrator", "office assistant", "secretary",
	"რესეფშენისტ", "ადმინისტრატორ", "ოფის ასისტენტ", "მდივან",
	// 客服
	"call center", "customer support", "customer service", "operator", "support specialist",
	"ქოლ ცენტრ", "ოპერატორ", "მხარდაჭერის",
	// 体力、后勤
	"cleaner", "housekeeper", "driver", "courier", "delivery", "loader", "packer",
	"warehouse worker", "security guard", "nanny", "worker",
	"დამლაგებელ", "მძღოლ", "კურიერ", "მტვირთავ", "შემფუთავ", "საწყობის მუშა", "დაცვის თანამშრომელ",
	"ძიძა", "მუშა",
}

// specialistKeywords 专业岗位以及资历相关的词，基础岗位的结果里面不应该出现
var specialistKeywords = []string{
	"director", "accountant", "bookkeeper", "auditor", "engineer", "developer", "programmer",
	"architect", "analyst", "lawyer", "attorney", "manager", "chief", "head of", "ceo", "cfo",
	"cto", "founder", "senior", "team lead", "tech lead", "doctor", "physician",
	"surgeon", "pharmacist", "economist", "financier", "scientist", "professor",
	"დირექტორ", "ბუღალტერ", "აუდიტორ", "ინჟინერ", "დეველოპერ", "პროგრამისტ", "არქიტექტორ",
	"ანალიტიკოს", "იურისტ", "ადვოკატ", "მენეჯერ", "ხელმძღვანელ", "უფროს", "მთავარი",
	"დამფუძნებელ", "ექიმ", "ქირურგ", "ფარმაცევტ", "ეკონომისტ", "ფინანსისტ", "პროფესორ",
}

// synonymGroups 可以互换的岗位名称，命中任意一个，其余的会追加到检索文本里面
var synonymGroups = [][]string{
	{"waiter", "waitress", "server", "ოფიციანტი", "მიმტანი"},
	{"bartender", "barman", "ბარმენი"},
	{"cashier", "მოლარე"},
	{"sales assistant", "sales consultant", "shop assistant", "გამყიდველი", "გაყიდვების კონსულტანტი"},
	{"cleaner", "housekeeper", "დამლაგებელი"},
	{"driver", "მძღოლი"},
	{"courier", "delivery driver", "კურიერი"},
	{"receptionist", "front desk agent", "რესეფშენისტი"},
	{"call center operator", "customer support agent", "ქოლ ცენტრის ოპერატორი"},
	{"software engineer", "software developer", "programmer", "პროგრამისტი", "დეველოპერი"},
	{"accountant", "bookkeeper", "ბუღალტერი"},
	{"lawyer", "attorney", "იურისტი", "ადვოკატი"},
	{"sales manager", "გაყიდვების მენეჯერი"},
	{"project manager", "პროექტის მენეჯერი"},
}
