package utils

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var maxU256 = abi.MaxUint256

func MustStringToBigint(data string) *big.Int {
	res, err := StringToBigint(data)
	if err != nil {
		panic(err)
	}

	return res
}

func StringToBigint(data string) (*big.Int, error) {
	if strings.HasPrefix(data, "-") {
		return nil, fmt.Errorf("%s invaild, can not support neg", data)
	}

	if data == "" {
		return common.Big0, nil
	}

	bigint, ok := new(big.Int).SetString(data, 10)
	if !ok {
		return nil, fmt.Errorf("%s invaild, can not parse to bigint", data)
	}

	if bigint.Cmp(maxU256) > 0 {
		return nil, fmt.Errorf("%s invaild, over u256 max", data)
	}

	return bigint, nil
}

// IsValidERCAddress normalizes an EVM address to lower case. The input must
// already be checksum-correct or all one case.
func IsValidERCAddress(address string) (string, bool) {
	if address == "" {
		return "", false
	}
	res := common.HexToAddress(address).Hex()
	if strings.EqualFold(res, address) {
		return strings.ToLower(address), true
	}
	return "", false
}

func Unpack(types []string, data []byte) ([]interface{}, error) {
	var (
		ts   []abi.Type
		args = abi.Arguments{}
	)

	for _, t := range types {
		_t, err := abi.NewType(t, t, nil)
		if err != nil {
			return nil, err
		}

		ts = append(ts, _t)
	}

	for _, t := range ts {
		args = append(args, abi.Argument{Type: t})
	}

	return args.Unpack(data)
}
