// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// key types
const (
	IntegerKeys = "integer"
	StringKeys  = "string"
)

// actions
const (
	actionInsert = "insert"
	actionRemove = "remove"
	actionPrint  = "print"
	actionDraw   = "draw"
	actionCheck  = "check"
	actionClear  = "clear"
)

// Operation - one step of a script
type Operation struct {
	Action string   `gluamapper:"action" json:"action"`
	Values []string `gluamapper:"values" json:"values"`
}

// Script - key type and the operations to apply
type Script struct {
	KeyType    string      `gluamapper:"key_type" json:"key_type"`
	Operations []Operation `gluamapper:"operations" json:"operations"`
}

// Summary - counts of the effects of a script
type Summary struct {
	Inserted   int `json:"inserted"`
	Duplicates int `json:"duplicates"`
	Removed    int `json:"removed"`
	NotFound   int `json:"notFound"`
}

// Player - applies operations to a single tree
type Player struct {
	log     *logger.L
	w       io.Writer
	tree    *avl.Tree
	keyType string
	summary Summary
}

// ParseKey - convert the text form of a value to a tree key
func ParseKey(keyType string, s string) (avl.Item, error) {
	switch strings.ToLower(keyType) {
	case IntegerKeys, "":
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		return avl.Int(n), nil
	case StringKeys:
		return avl.String(s), nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// NewPlayer - create a player for a tree, diagnostic output goes to w
func NewPlayer(tree *avl.Tree, keyType string, w io.Writer, log *logger.L) (*Player, error) {
	keyType = strings.ToLower(keyType)
	switch keyType {
	case "":
		keyType = IntegerKeys
	case IntegerKeys, StringKeys:
	default:
		return nil, fault.ErrInvalidKeyType
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Player{
		log:     log,
		w:       w,
		tree:    tree,
		keyType: keyType,
	}, nil
}

// Summary - totals since the player was created
func (p *Player) Summary() Summary {
	return p.summary
}

// Play - apply all operations in order
func (p *Player) Play(operations []Operation) error {
	if 0 == len(operations) {
		return fault.ErrEmptyOperationList
	}
	for i, op := range operations {
		if err := p.apply(op); nil != err {
			p.log.Errorf("operation[%d]: %q  error: %s", i, op.Action, err)
			return err
		}
	}
	p.log.Infof("summary: %+v", p.summary)
	return nil
}

func (p *Player) apply(op Operation) error {
	action := strings.ToLower(strings.TrimSpace(op.Action))
	p.log.Debugf("%s: %v", action, op.Values)

	switch action {
	case actionInsert:
		return p.each(op.Values, p.insert)

	case actionRemove, "delete":
		return p.each(op.Values, p.remove)

	case actionPrint:
		p.tree.Print(p.w)

	case actionDraw:
		detail := false
		for _, v := range op.Values {
			if "detail" == v {
				detail = true
			}
		}
		depth := p.tree.Draw(p.w, detail)
		p.log.Debugf("draw depth: %d", depth)

	case actionCheck:
		if !p.tree.Check() {
			return fault.ErrTreeInconsistent
		}
		p.log.Infof("check: %d nodes  height: %d", p.tree.Count(), p.tree.Height())

	case actionClear:
		p.tree.Clear()

	default:
		return fault.ErrInvalidAction
	}
	return nil
}

// parse every value then apply f to it
func (p *Player) each(values []string, f func(avl.Item) error) error {
	if 0 == len(values) {
		return fault.ErrRequiredValues
	}
	for _, v := range values {
		key, err := ParseKey(p.keyType, v)
		if nil != err {
			p.log.Errorf("value: %q  error: %s", v, err)
			return err
		}
		if err := f(key); nil != err {
			return err
		}
	}
	return nil
}

func (p *Player) insert(key avl.Item) error {
	err := p.tree.Insert(key)
	switch {
	case nil == err:
		p.summary.Inserted += 1
		p.log.Tracef("inserted: %v", key)
	case fault.IsErrExists(err):
		p.summary.Duplicates += 1
		p.log.Warnf("insert: %v  rejected: %s", key, err)
	default:
		return err
	}
	return nil
}

func (p *Player) remove(key avl.Item) error {
	err := p.tree.Delete(key)
	switch {
	case nil == err:
		p.summary.Removed += 1
		p.log.Tracef("removed: %v", key)
	case fault.IsErrNotFound(err):
		p.summary.NotFound += 1
		p.log.Warnf("remove: %v  rejected: %s", key, err)
	default:
		return err
	}
	return nil
}

// Run - play a whole script against a new tree
func Run(script Script, w io.Writer, log *logger.L) (*avl.Tree, Summary, error) {
	tree := avl.New()
	player, err := NewPlayer(tree, script.KeyType, w, log)
	if nil != err {
		return nil, Summary{}, err
	}
	err = player.Play(script.Operations)
	return tree, player.Summary(), err
}
