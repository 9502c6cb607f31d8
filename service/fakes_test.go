package service

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/EccoMoonProject/ERC721Base/dao"
	"github.com/EccoMoonProject/ERC721Base/pkg/ratefeed"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// newTestDB returns a gorm handle over sqlmock that accepts any sequence of
// transactions. The fakes below hold the actual state; the db only carries
// begin/commit/rollback.
func newTestDB(t *testing.T) *gorm.DB {
	conn, mock, err := sqlmock.New()
	assert.NoError(t, err)

	mock.MatchExpectationsInOrder(false)
	for i := 0; i < 32; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
		mock.ExpectRollback()
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	return db
}

type fakeTokens struct {
	rows map[uint64]*dao.TokenModel
}

func (f *fakeTokens) TableName() string { return "token" }

func (f *fakeTokens) CreateBatch(db *gorm.DB, models []*dao.TokenModel) error {
	for _, model := range models {
		if _, ok := f.rows[model.Id]; ok {
			return errors.New("duplicate token id")
		}
		f.rows[model.Id] = model
	}
	return nil
}

func (f *fakeTokens) SelectById(db *gorm.DB, tokenId uint64) (*dao.TokenModel, error) {
	model, ok := f.rows[tokenId]
	if !ok || model.DeleteAt != 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return model, nil
}

func (f *fakeTokens) Burn(db *gorm.DB, tokenId uint64) error {
	f.rows[tokenId].DeleteAt = 1
	return nil
}

func (f *fakeTokens) Count(db *gorm.DB) (int64, error) {
	var count int64
	for _, model := range f.rows {
		if model.DeleteAt == 0 {
			count++
		}
	}
	return count, nil
}

type fakeCounter struct {
	row *dao.CounterModel
}

func (f *fakeCounter) TableName() string { return "counter" }

func (f *fakeCounter) Select(db *gorm.DB) (*dao.CounterModel, error) {
	if f.row == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.row, nil
}

func (f *fakeCounter) Create(db *gorm.DB, model *dao.CounterModel) error {
	model.Id = 1
	f.row = model
	return nil
}

func (f *fakeCounter) Advance(db *gorm.DB, id uint64, nextId uint64) error {
	f.row.NextId = nextId
	return nil
}

type fakeTokenUris struct {
	rows map[uint64]*dao.TokenUriModel
}

func (f *fakeTokenUris) TableName() string { return "token_uri" }

func (f *fakeTokenUris) Create(db *gorm.DB, model *dao.TokenUriModel) error {
	f.rows[model.TokenId] = model
	return nil
}

func (f *fakeTokenUris) SelectByTokenId(db *gorm.DB, tokenId uint64) (*dao.TokenUriModel, error) {
	model, ok := f.rows[tokenId]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return model, nil
}

type fakeBatchRanges struct {
	rows []*dao.BatchRangeModel
}

func (f *fakeBatchRanges) TableName() string { return "batch_range" }

func (f *fakeBatchRanges) Create(db *gorm.DB, model *dao.BatchRangeModel) error {
	f.rows = append(f.rows, model)
	return nil
}

func (f *fakeBatchRanges) SelectByTokenId(db *gorm.DB, tokenId uint64) (*dao.BatchRangeModel, error) {
	for _, model := range f.rows {
		if model.StartId <= tokenId && tokenId < model.StartId+model.Quantity {
			return model, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeWhitelists struct {
	rows   map[string]*dao.WhitelistModel
	nextId uint64
}

func (f *fakeWhitelists) TableName() string { return "whitelist" }

func (f *fakeWhitelists) Create(db *gorm.DB, model *dao.WhitelistModel) error {
	f.nextId++
	model.Id = f.nextId
	f.rows[model.Address] = model
	return nil
}

func (f *fakeWhitelists) Update(db *gorm.DB, id uint64, data map[string]interface{}) error {
	for _, model := range f.rows {
		if model.Id == id {
			model.Authorized = uint8(data["authorized"].(int))
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeWhitelists) SelectByAddress(db *gorm.DB, address string) (*dao.WhitelistModel, error) {
	model, ok := f.rows[address]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return model, nil
}

type fakeBalances struct {
	rows   map[string]*dao.BalanceModel
	nextId uint64
}

func (f *fakeBalances) TableName() string { return "balance" }

func (f *fakeBalances) Create(db *gorm.DB, model *dao.BalanceModel) error {
	f.nextId++
	model.Id = f.nextId
	if model.Balance == "" {
		model.Balance = "0"
	}
	f.rows[model.Address] = model
	return nil
}

func (f *fakeBalances) UpdateBalance(db *gorm.DB, id uint64, data map[string]interface{}) error {
	for _, model := range f.rows {
		if model.Id == id {
			model.Balance = data["balance"].(string)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeBalances) SelectByAddress(db *gorm.DB, address string) (*dao.BalanceModel, error) {
	model, ok := f.rows[address]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return model, nil
}

func (f *fakeBalances) set(address, balance string) {
	f.nextId++
	f.rows[address] = &dao.BalanceModel{
		Id:      f.nextId,
		Address: address,
		Balance: balance,
	}
}

func (f *fakeBalances) get(address string) string {
	model, ok := f.rows[address]
	if !ok {
		return "0"
	}
	return model.Balance
}

type fakeEvents struct {
	rows []*dao.IssuanceEventModel
}

func (f *fakeEvents) TableName() string { return "issuance_event" }

func (f *fakeEvents) Create(db *gorm.DB, model *dao.IssuanceEventModel) error {
	f.rows = append(f.rows, model)
	return nil
}

func (f *fakeEvents) List(db *gorm.DB, limit int) ([]dao.IssuanceEventModel, error) {
	// newest first, at most limit rows
	var datas []dao.IssuanceEventModel
	for i := len(f.rows) - 1; i >= 0 && len(datas) < limit; i-- {
		datas = append(datas, *f.rows[i])
	}
	return datas, nil
}

type stubGuard struct {
	authority string
}

func (g *stubGuard) CurrentAuthority() string { return g.authority }

type fixtures struct {
	tokens   *fakeTokens
	counter  *fakeCounter
	uris     *fakeTokenUris
	ranges   *fakeBatchRanges
	wl       *fakeWhitelists
	balances *fakeBalances
	events   *fakeEvents
}

func newFixtures() *fixtures {
	return &fixtures{
		tokens:   &fakeTokens{rows: map[uint64]*dao.TokenModel{}},
		counter:  &fakeCounter{},
		uris:     &fakeTokenUris{rows: map[uint64]*dao.TokenUriModel{}},
		ranges:   &fakeBatchRanges{},
		wl:       &fakeWhitelists{rows: map[string]*dao.WhitelistModel{}},
		balances: &fakeBalances{rows: map[string]*dao.BalanceModel{}},
		events:   &fakeEvents{},
	}
}

func newTestIssuance(t *testing.T, rate string, authority string) (*IssuanceService, *fixtures) {
	f := newFixtures()

	s := &IssuanceService{
		db:            newTestDB(t),
		inflight:      mapset.NewSet[string](),
		Tokens:        f.tokens,
		Counter:       f.counter,
		TokenUris:     f.uris,
		BatchRanges:   f.ranges,
		Whitelists:    f.wl,
		Events:        f.events,
		Oracle:        NewOracleService(ratefeed.NewFixedFeed(mustBig(rate))),
		Treasury:      &TreasuryService{Balances: f.balances},
		Guard:         &stubGuard{authority: authority},
		saveAuthority: func(string) error { return nil },
	}

	return s, f
}
