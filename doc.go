// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kfut provides the error taxonomy and the pollable futures used
// throughout the kube API client, together with adapters between the
// poll-style and suspension-style asynchronous models built on
// [code.hybscloud.com/kont].
//
// # Asynchronous Models
//
//   - Poll-style: [Poller] and [Source] are polled repeatedly by an external
//     driver. A pending poll returns [code.hybscloud.com/iox.ErrWouldBlock]; every other
//     outcome is final. Sources end with [io.EOF].
//   - Suspension-style: [kont.Eff] (Cont-world) and [kont.Expr] (Expr-world)
//     computations written sequentially with kont.Bind. Suspension points are
//     [Await] operations; failures use kont's error effect.
//   - Bridge: [Upgrade]/[UpgradeExpr] lift a poller into a suspension-style
//     computation; [Downgrade]/[DowngradeExpr] expose a suspension-style
//     computation as a poller. Errors cross the bridge unchanged.
//
// Fused await constructors: [AwaitBind], [AwaitThen], [AwaitEither] (Cont)
// and [ExprAwaitBind] (Expr).
//
// # Stepping
//
// [Step] and [Advance] drive an Expr-world computation one effect at a time
// for external event loops. An Await that is not ready returns
// iox.ErrWouldBlock from Advance with the suspension left unconsumed.
//
// # Error Taxonomy
//
// Every failure reported by this package is an [*Error] of exactly one [Kind]:
// [KindDecode] for codec failures and [KindIO] for I/O failures. Errors are
// built only by conversion: [JSONError], [ProtoError], [IOError], or [Wrap] at
// a conversion boundary.
//
// # Futures and Streams
//
//   - [Future] owns one [Poller]; [Stream] owns one [Source].
//   - Constructors: [New], [Ready], [Fail], [Resolve], [NewStream], [Items], [Pipe], [Lines].
//   - Combinators: [Map], [AndThen], [Join], [Collect], [AndThenEach], [DecodeJSON], [Fold].
//   - Decoding: [ParseJSON], [ParseJSONAsErr], [ParseProto], [ParseProtoJSON].
//
// Futures and streams are passive: they never spawn goroutines and never
// block. [Wait], [WaitNext], [Exec] and [ExecExpr] are blocking drivers that
// run on the calling goroutine with adaptive backoff (iox.Backoff), tuned
// with [WithBackoff].
//
// # Diagnostics
//
// With a debug-level logger installed by [SetLogger], every payload is
// logged before it is decoded.
//
// # Example
//
//	f := kfut.ParseJSON[Pod](body)
//	name := kfut.Map(f, func(p Pod) string { return p.Name })
//	v, err := kfut.Wait(name)
package kfut
