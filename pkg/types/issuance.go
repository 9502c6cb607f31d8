package types

type MintReq struct {
	Caller string `json:"caller" binding:"required"`
	To     string `json:"to" binding:"required"`
	Uri    string `json:"uri" binding:"required"`
}

type MintRsp struct {
	TokenId uint64 `json:"token_id,string"`
}

type BatchMintReq struct {
	Caller   string `json:"caller" binding:"required"`
	To       string `json:"to" binding:"required"`
	Quantity uint64 `json:"quantity" binding:"required"`
	BaseUri  string `json:"base_uri"`
	Data     string `json:"data"`
	Tier     uint8  `json:"tier"`
}

type BatchMintRsp struct {
	Minted  bool   `json:"minted"`
	StartId uint64 `json:"start_id,string"`
	EndId   uint64 `json:"end_id,string"`
	Amount  string `json:"amount"`
}

type BurnReq struct {
	Caller  string `json:"caller" binding:"required"`
	TokenId uint64 `json:"token_id" binding:"required"`
}

type WithdrawReq struct {
	Caller string `json:"caller" binding:"required"`
	To     string `json:"to" binding:"required"`
}

type WithdrawRsp struct {
	Amount string `json:"amount"`
}

type TransferAuthorityReq struct {
	Caller string `json:"caller" binding:"required"`
	To     string `json:"to" binding:"required"`
}

type GrantWhitelistReq struct {
	Caller  string `json:"caller" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type WhitelistStatusReq struct {
	Address string `json:"address" form:"address" binding:"required"`
}

type WhitelistStatusRsp struct {
	Address    string `json:"address"`
	Authorized bool   `json:"authorized"`
}

type BindCompanyReq struct {
	Caller string `json:"caller" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

type CompanyReq struct {
	Address string `json:"address" form:"address" binding:"required"`
}

type CompanyRsp struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

type TokenUriReq struct {
	TokenId uint64 `json:"token_id" form:"token_id" binding:"required"`
}

type TokenUriRsp struct {
	TokenId uint64 `json:"token_id,string"`
	Uri     string `json:"uri"`
}

type NextIdRsp struct {
	NextId uint64 `json:"next_id,string"`
}

type SupplyRsp struct {
	Supply int64 `json:"supply"`
}

type EventsReq struct {
	Limit int `json:"limit" form:"limit"`
}

type PriceReq struct {
	Tier uint8 `json:"tier" form:"tier"`
}

type PriceRsp struct {
	Tier  uint8  `json:"tier"`
	Price string `json:"price"`
}
