package widget_test

import (
	"time"

	"github.com/jhoicas/messenger-api/internal/domain/entity"
	"github.com/jhoicas/messenger-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. Reproducen el contrato de los adaptadores de MongoDB:
// (nil, nil) en un miss, escrituras sobre IDs inexistentes como no-op y
// relecturas que devuelven copias (como decodificar un documento).
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	inserts   int
	lookups   int
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (f *fakeCustomerRepo) Insert(customer *entity.Customer) error {
	f.inserts++
	f.customers[customer.ID] = cloneCustomer(customer)
	return nil
}

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	f.lookups++
	return cloneCustomer(f.customers[id]), nil
}

func (f *fakeCustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	f.lookups++
	for _, c := range f.customers {
		if c.Email == email {
			return cloneCustomer(c), nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	f.lookups++
	for _, c := range f.customers {
		if c.Phone == phone {
			return cloneCustomer(c), nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) UpdateMessengerData(id string, doc entity.CustomerDoc, customData entity.CustomData) error {
	c, ok := f.customers[id]
	if !ok {
		return nil
	}
	if c.MessengerData == nil {
		c.MessengerData = &entity.MessengerData{}
	}
	c.MessengerData.CustomData = customData
	if doc.Email != "" {
		c.Email = doc.Email
	}
	if doc.Phone != "" {
		c.Phone = doc.Phone
	}
	if doc.FirstName != "" {
		c.FirstName = doc.FirstName
	}
	if doc.LastName != "" {
		c.LastName = doc.LastName
	}
	if doc.Description != "" {
		c.Description = doc.Description
	}
	if doc.IsUser {
		c.IsUser = true
	}
	return nil
}

func (f *fakeCustomerRepo) SetActive(id string) error {
	if c, ok := f.customers[id]; ok {
		ensureMessengerData(c).IsActive = true
	}
	return nil
}

func (f *fakeCustomerRepo) SetInactive(id string, lastSeenAt time.Time) error {
	if c, ok := f.customers[id]; ok {
		md := ensureMessengerData(c)
		md.IsActive = false
		md.LastSeenAt = lastSeenAt
	}
	return nil
}

func (f *fakeCustomerRepo) RecordSession(id string, lastSeenAt time.Time, newSession bool, urlVisits map[string]int) error {
	c, ok := f.customers[id]
	if !ok {
		return nil
	}
	md := ensureMessengerData(c)
	md.LastSeenAt = lastSeenAt
	md.IsActive = true
	if newSession {
		md.SessionCount++
		c.URLVisits = copyVisits(urlVisits)
	}
	return nil
}

func (f *fakeCustomerRepo) SetLocation(id string, location entity.Location) error {
	if c, ok := f.customers[id]; ok {
		loc := location
		c.Location = &loc
	}
	return nil
}

func (f *fakeCustomerRepo) SetVisitorEmail(id string, email string) error {
	if c, ok := f.customers[id]; ok {
		ensureVisitorInfo(c).Email = email
	}
	return nil
}

func (f *fakeCustomerRepo) SetVisitorPhone(id string, phone string) error {
	if c, ok := f.customers[id]; ok {
		ensureVisitorInfo(c).Phone = phone
	}
	return nil
}

func (f *fakeCustomerRepo) AddCompany(id string, companyID string) error {
	c, ok := f.customers[id]
	if !ok {
		return nil
	}
	for _, existing := range c.CompanyIDs {
		if existing == companyID {
			return nil
		}
	}
	c.CompanyIDs = append(c.CompanyIDs, companyID)
	return nil
}

func ensureMessengerData(c *entity.Customer) *entity.MessengerData {
	if c.MessengerData == nil {
		c.MessengerData = &entity.MessengerData{}
	}
	return c.MessengerData
}

func ensureVisitorInfo(c *entity.Customer) *entity.VisitorContactInfo {
	if c.VisitorContactInfo == nil {
		c.VisitorContactInfo = &entity.VisitorContactInfo{}
	}
	return c.VisitorContactInfo
}

func cloneCustomer(c *entity.Customer) *entity.Customer {
	if c == nil {
		return nil
	}
	out := *c
	if c.MessengerData != nil {
		md := *c.MessengerData
		if c.MessengerData.CustomData != nil {
			md.CustomData = make(entity.CustomData, len(c.MessengerData.CustomData))
			for k, v := range c.MessengerData.CustomData {
				md.CustomData[k] = v
			}
		}
		out.MessengerData = &md
	}
	if c.Location != nil {
		loc := *c.Location
		out.Location = &loc
	}
	if c.VisitorContactInfo != nil {
		info := *c.VisitorContactInfo
		out.VisitorContactInfo = &info
	}
	out.CompanyIDs = append([]string(nil), c.CompanyIDs...)
	out.URLVisits = copyVisits(c.URLVisits)
	return &out
}

func copyVisits(visits map[string]int) map[string]int {
	if visits == nil {
		return nil
	}
	out := make(map[string]int, len(visits))
	for k, v := range visits {
		out[k] = v
	}
	return out
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
	inserts   int
}

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (f *fakeCompanyRepo) Insert(company *entity.Company) error {
	f.inserts++
	clone := *company
	f.companies[company.ID] = &clone
	return nil
}

func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	if c, ok := f.companies[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeCompanyRepo) GetByName(name string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

// fakeNotifier registra las notificaciones de actividad emitidas.
type fakeNotifier struct {
	customerIDs []string
	companyIDs  []string
}

func (f *fakeNotifier) CustomerCreated(id string) { f.customerIDs = append(f.customerIDs, id) }
func (f *fakeNotifier) CompanyCreated(id string)  { f.companyIDs = append(f.companyIDs, id) }
