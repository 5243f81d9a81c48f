// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package dotdiff is the overall repository for the dot-difference perceptual
discrimination task: two squares of randomly scattered white and black dots,
where the subject reports which square has more white dots, with difficulty
adapted trial-by-trial by a simple staircase.

This top-level of the repository has no functional code -- everything is organized
into the following sub-packages:

* perm: unbiased random permutations (Fisher-Yates) from an injected random source,
used to scatter dots without positional bias.

* dots: the stimulus compositor, which builds the two on / off dot grids with a
controlled count difference, places them left / right according to the target side,
reports the realized counts, and draws them onto any Canvas (Raster for images).

* stair: the staircase controller: two correct in a row makes the task harder,
an error makes it easier, with a step size that shrinks over trials and a floor of 1.

* dotenv: an emergent env.Env that plays the role of the trial controller,
owning difficulty and accuracy history across trials.

* observer: a simulated subject with a Weibull psychometric function.

* dotlog: trial logs in etable format, per-run stats, and staircase plots.

* examples: dotdiff runs batches of simulated observers (optionally across MPI nodes),
and dotview presents the task on screen for a human subject.
*/
package dotdiff
