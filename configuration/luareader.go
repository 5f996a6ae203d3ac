// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/gallery/fault"
)

// field names are taken from the gluamapper tag exactly as written
var tableMapper = gluamapper.Mapper{
	Option: gluamapper.Option{
		NameFunc: func(s string) string { return s },
		TagName:  "gluamapper",
	},
}

// ParseConfigurationFile - run a Lua file and map the table it returns
// onto config
//
// the script sees its own name as arg[0] and any extra arguments as
// arg[1] onwards
func ParseConfigurationFile(fileName string, config interface{}, arguments ...string) error {
	L := lua.NewState()
	defer L.Close()
	L.OpenLibs()

	arg := L.NewTable()
	arg.RawSetInt(0, lua.LString(fileName))
	for i, a := range arguments {
		arg.RawSetInt(i+1, lua.LString(a))
	}
	L.SetGlobal("arg", arg)

	if err := L.DoFile(fileName); nil != err {
		return err
	}

	result, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return fault.ErrInvalidConfiguration
	}
	return tableMapper.Map(result, config)
}
