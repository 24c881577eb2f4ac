package blend

// Porter-Duff operators on premultiplied pixels. Each channel is
// out = S*Fs + D*Fd where the factors come from {0, 1, Sa, 1-Sa, Da, 1-Da}.

func blendClear(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return 0, 0, 0, 0
}

func blendCopy(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return sr, sg, sb, sa
}

func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	isa := inv255(sa)
	return addClamp(sr, mulDiv255(dr, isa)),
		addClamp(sg, mulDiv255(dg, isa)),
		addClamp(sb, mulDiv255(db, isa)),
		addClamp(sa, mulDiv255(da, isa))
}

func blendDestinationOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	ida := inv255(da)
	return addClamp(dr, mulDiv255(sr, ida)),
		addClamp(dg, mulDiv255(sg, ida)),
		addClamp(db, mulDiv255(sb, ida)),
		addClamp(da, mulDiv255(sa, ida))
}

func blendSourceIn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(sr, da),
		mulDiv255(sg, da),
		mulDiv255(sb, da),
		mulDiv255(sa, da)
}

func blendDestinationIn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(dr, sa),
		mulDiv255(dg, sa),
		mulDiv255(db, sa),
		mulDiv255(da, sa)
}

func blendSourceOut(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	ida := inv255(da)
	return mulDiv255(sr, ida),
		mulDiv255(sg, ida),
		mulDiv255(sb, ida),
		mulDiv255(sa, ida)
}

func blendDestinationOut(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	isa := inv255(sa)
	return mulDiv255(dr, isa),
		mulDiv255(dg, isa),
		mulDiv255(db, isa),
		mulDiv255(da, isa)
}

func blendSourceAtop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	isa := inv255(sa)
	return addClamp(mulDiv255(sr, da), mulDiv255(dr, isa)),
		addClamp(mulDiv255(sg, da), mulDiv255(dg, isa)),
		addClamp(mulDiv255(sb, da), mulDiv255(db, isa)),
		da
}

func blendDestinationAtop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	ida := inv255(da)
	return addClamp(mulDiv255(dr, sa), mulDiv255(sr, ida)),
		addClamp(mulDiv255(dg, sa), mulDiv255(sg, ida)),
		addClamp(mulDiv255(db, sa), mulDiv255(sb, ida)),
		sa
}

func blendXor(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	isa := inv255(sa)
	ida := inv255(da)
	return addClamp(mulDiv255(sr, ida), mulDiv255(dr, isa)),
		addClamp(mulDiv255(sg, ida), mulDiv255(dg, isa)),
		addClamp(mulDiv255(sb, ida), mulDiv255(db, isa)),
		addClamp(mulDiv255(sa, ida), mulDiv255(da, isa))
}

// blendLighter is the plus operator: channels add and saturate.
func blendLighter(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return addClamp(sr, dr),
		addClamp(sg, dg),
		addClamp(sb, db),
		addClamp(sa, da)
}

// blendPlusDarker is the subtractive counterpart of plus:
// each color channel is max(0, S+D-1).
func blendPlusDarker(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return addSub255(sr, dr),
		addSub255(sg, dg),
		addSub255(sb, db),
		addClamp(sa, da)
}
