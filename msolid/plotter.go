// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// plot sets
var (
	PlotSet2 = []string{"ed,q", "p,q"}
	PlotSet4 = []string{"ed,q", "p,q", "t,q", "ed,ev"}
	PlotSet6 = []string{"ed,q", "p,q", "t,q", "t,d", "ed,d", "t,u"}
)

// Plotter draws stress/strain/damage curves from driver results
type Plotter struct {

	// settings
	PngRes  int    // resolution for .png files
	Split   bool   // split graphs instead of using subplot
	SaveDir string // directory to put figure
	SaveFnk string // save figure after plot (filename key)
	UseEps  bool   // save eps figure instead of png
	Clr     string // curve color
	Mrk     string // curve marker
	Ls      string // curve linestyle
	Lbl     string // curve label
	SpMrk   string // start-point marker
	EpMrk   string // end-point marker
	Idmg    int    // index of damage variable within Alp; negative => no damage variable

	// subplots
	Nrow int // subplot number of rows
	Ncol int // subplot number of cols
	Pidx int // subplot index

	// computed invariants
	P, Q   []float64 // stress invariants
	Ev, Ed []float64 // strain invariants
}

// SetFig sets figure space for plotting
func (o *Plotter) SetFig(split, epsfig bool, prop, width float64, savedir, savefnk string) {
	if o.PngRes < 150 {
		o.PngRes = 150
	}
	o.Split = split
	o.UseEps = epsfig
	plt.Reset(true, &plt.A{Eps: epsfig, Prop: prop, WidthPt: width, Dpi: o.PngRes})
	o.SaveDir = savedir
	o.SaveFnk = io.FnKey(savefnk)
	if o.Clr == "" {
		o.Clr, o.Mrk, o.Ls = "b", "", "-"
	}
	if o.SpMrk == "" {
		o.SpMrk, o.EpMrk = "o", "s"
	}
}

// Plot runs the plot generation
//  res   -- results from Driver [n]
//  sts   -- strains from Driver [n][nsig]
//  times -- times from Driver [n]; may be nil
func (o *Plotter) Plot(keys []string, res []*State, sts [][]float64, times []float64, first, last bool) {

	// auxiliary variables
	n := imin(len(res), len(sts))
	if n < 1 {
		return
	}
	if times == nil {
		times = utl.LinSpace(0, 1, n)
	}
	x := make([]float64, n)
	y := make([]float64, n)
	o.P = make([]float64, n)
	o.Q = make([]float64, n)
	o.Ev = make([]float64, n)
	o.Ed = make([]float64, n)

	// compute invariants
	nsig := len(res[0].Sig)
	devε := make([]float64, nsig)
	for i := 0; i < n; i++ {
		o.P[i], o.Q[i] = M_p(res[i].Sig), M_q(res[i].Sig)
		_, o.Ev[i], o.Ed[i] = M_devε(devε, sts[i])
	}

	// clear previous figure
	if first {
		plt.Clf()
		plt.SplotGap(0.35, 0.35)
	}

	// subplot variables
	o.Pidx = 1
	o.Ncol, o.Nrow = utl.BestSquare(len(keys))
	if len(keys) == 2 {
		o.Ncol, o.Nrow = 1, 2
	}
	if len(keys) == 3 {
		o.Ncol, o.Nrow = 1, 3
	}

	// do plot
	for _, key := range keys {
		o.subplot()
		switch key {
		case "ed,q":
			o.draw(x, y, o.Ed, o.Q, "$\\varepsilon_d$", "$q$", last)
		case "ed,ev":
			o.draw(x, y, o.Ed, o.Ev, "$\\varepsilon_d$", "$\\varepsilon_v$", last)
		case "p,q":
			o.draw(x, y, o.P, o.Q, "$p$", "$q$", last)
		case "t,q":
			o.draw(x, y, times, o.Q, "$t$", "$q$", last)
		case "t,d":
			o.draw(x, y, times, o.dmg(res), "$t$", "$\\omega$", last)
		case "ed,d":
			o.draw(x, y, o.Ed, o.dmg(res), "$\\varepsilon_d$", "$\\omega$", last)
		case "t,u":
			o.draw(x, y, times, o.nrg(res), "$t$", "$u$", last)
		case "t,pw":
			o.draw(x, y, times, o.wrk(res), "$t$", "$p_w$", last)
		case "empty":
			continue
		default:
			chk.Panic("cannot handle key=%q", key)
		}
		if o.Split && last {
			o.save("_" + key)
		}
	}

	// save figure
	if !o.Split && last {
		o.save("")
	}
}

// dmg extracts the damage variable curve
func (o *Plotter) dmg(res []*State) (d []float64) {
	d = make([]float64, len(res))
	if o.Idmg < 0 {
		return
	}
	for i, r := range res {
		if o.Idmg < len(r.Alp) {
			d[i] = r.Alp[o.Idmg]
		}
	}
	return
}

// nrg extracts the strain energy curve
func (o *Plotter) nrg(res []*State) (u []float64) {
	u = make([]float64, len(res))
	for i, r := range res {
		u[i] = r.U
	}
	return
}

// wrk extracts the plastic work curve
func (o *Plotter) wrk(res []*State) (p []float64) {
	p = make([]float64, len(res))
	for i, r := range res {
		p[i] = r.Pw
	}
	return
}

// draw plots one x-y curve with start/end markers
func (o *Plotter) draw(x, y, X, Y []float64, xlbl, ylbl string, last bool) {
	n := imin(len(X), len(Y))
	copy(x, X[:n])
	copy(y, Y[:n])
	plt.Plot(x[:n], y[:n], &plt.A{C: o.Clr, M: o.Mrk, Ls: o.Ls, L: o.Lbl, NoClip: true})
	if last {
		plt.PlotOne(x[0], y[0], &plt.A{C: "r", M: o.SpMrk, NoClip: true})
		plt.PlotOne(x[n-1], y[n-1], &plt.A{C: "k", M: o.EpMrk, NoClip: true})
		plt.Gll(xlbl, ylbl, nil)
	}
}

// subplot sets subplot
func (o *Plotter) subplot() {
	if o.Split {
		plt.Clf()
		return
	}
	plt.Subplot(o.Nrow, o.Ncol, o.Pidx)
	o.Pidx += 1
}

// save saves the figure; the extension is chosen by SetFig
func (o *Plotter) save(suffix string) {
	if o.SaveFnk == "" {
		return
	}
	dir := o.SaveDir
	if dir == "" {
		dir = "."
	}
	plt.Save(dir, o.SaveFnk+suffix)
}

// imin returns the smallest of two integers
func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}
