// Package sampler turns host world matrices into the per-frame channels of the
// destination document.
//
// Every matrix is corrected by a -90° rotation about X, decomposed into
// translation, ZXY euler rotation and scale, and remapped (scene scale on
// translation, Y/Z swap on scale). The euler order is part of the output
// contract; changing it changes what the destination shows.
package sampler
