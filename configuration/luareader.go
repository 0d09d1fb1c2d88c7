// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/countinghouse/ledgerd/fault"
)

// ParseConfigurationFile - execute a Lua chunk and map the settings
// table it returns onto a configuration structure
//
// the chunk sees its own file name as arg[0] and must end with a
// single "return M" of the settings table
func ParseConfigurationFile(fileName string, config interface{}) error {
	state := lua.NewState()
	defer state.Close()

	state.OpenLibs()

	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	state.SetGlobal("arg", arg)

	if err := state.DoFile(fileName); err != nil {
		return err
	}

	table, ok := state.Get(state.GetTop()).(*lua.LTable)
	if !ok {
		return fault.InvalidStructure
	}

	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: func(name string) string {
				return name
			},
			TagName: "gluamapper",
		},
	}
	return mapper.Map(table, config)
}
