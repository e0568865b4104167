// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/echobuffer/buffer"
	"github.com/bitmark-inc/echobuffer/fault"
)

// accounts:
//   0. buffer (writable)
func (p *Processor) echo(accounts *accountIterator, data []byte) error {

	echoBuffer, err := accounts.next()
	if nil != err {
		return err
	}

	err = p.require(buffer.IsBlank(echoBuffer.Data), fault.ErrBufferNonZero, "buffer consists of non-zero data")
	if nil != err {
		return err
	}

	n, err := buffer.WriteEnvelope(echoBuffer.Data, data)
	if nil != err {
		p.log.Warnf("echo buffer: %s  size: %d  error: %s", echoBuffer.Key, len(echoBuffer.Data), err)
		return err
	}
	p.log.Debugf("echo buffer: %s  wrote: %d of %d bytes", echoBuffer.Key, n, len(data))

	return nil
}
