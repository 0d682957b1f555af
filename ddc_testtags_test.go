package ddc

// Shared tag fixtures for this package's tests: two continuous axes (X, Y)
// and one discrete dimension sampling each.

type XAxis struct{}

func (XAxis) AxisName() string { return "X" }

type YAxis struct{}

func (YAxis) AxisName() string { return "Y" }

type MeshX struct{}

func (MeshX) DimName() string { return "MeshX" }
func (MeshX) Axis() Axis      { return XAxis{} }

type MeshY struct{}

func (MeshY) DimName() string { return "MeshY" }
func (MeshY) Axis() Axis      { return YAxis{} }
