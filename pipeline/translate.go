package pipeline

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glitz/driver"
)

func primitiveMode(t gputypes.PrimitiveTopology) driver.PrimitiveMode {
	switch t {
	case gputypes.PrimitiveTopologyPointList:
		return driver.ModePoints
	case gputypes.PrimitiveTopologyLineList:
		return driver.ModeLines
	case gputypes.PrimitiveTopologyLineStrip:
		return driver.ModeLineStrip
	case gputypes.PrimitiveTopologyTriangleStrip:
		return driver.ModeTriangleStrip
	default:
		return driver.ModeTriangles
	}
}

func isLineTopology(t gputypes.PrimitiveTopology) bool {
	return t == gputypes.PrimitiveTopologyLineList || t == gputypes.PrimitiveTopologyLineStrip
}

// cullFace returns the face to cull, or false if culling is disabled.
func cullFace(m gputypes.CullMode) (driver.Face, bool) {
	switch m {
	case gputypes.CullModeFront:
		return driver.FaceFront, true
	case gputypes.CullModeBack:
		return driver.FaceBack, true
	default:
		return 0, false
	}
}

func winding(f gputypes.FrontFace) driver.Winding {
	if f == gputypes.FrontFaceCW {
		return driver.WindingCW
	}
	return driver.WindingCCW
}

func compareFunc(c gputypes.CompareFunction) driver.CompareFunc {
	switch c {
	case gputypes.CompareFunctionNever:
		return driver.CompareNever
	case gputypes.CompareFunctionLess:
		return driver.CompareLess
	case gputypes.CompareFunctionEqual:
		return driver.CompareEqual
	case gputypes.CompareFunctionLessEqual:
		return driver.CompareLessEqual
	case gputypes.CompareFunctionGreater:
		return driver.CompareGreater
	case gputypes.CompareFunctionNotEqual:
		return driver.CompareNotEqual
	case gputypes.CompareFunctionGreaterEqual:
		return driver.CompareGreaterEqual
	default:
		return driver.CompareAlways
	}
}

var blendFactors = map[gputypes.BlendFactor]driver.BlendFactor{
	gputypes.BlendFactorZero:              driver.BlendZero,
	gputypes.BlendFactorOne:               driver.BlendOne,
	gputypes.BlendFactorSrc:               driver.BlendSrcColor,
	gputypes.BlendFactorOneMinusSrc:       driver.BlendOneMinusSrcColor,
	gputypes.BlendFactorSrcAlpha:          driver.BlendSrcAlpha,
	gputypes.BlendFactorOneMinusSrcAlpha:  driver.BlendOneMinusSrcAlpha,
	gputypes.BlendFactorDst:               driver.BlendDstColor,
	gputypes.BlendFactorOneMinusDst:       driver.BlendOneMinusDstColor,
	gputypes.BlendFactorDstAlpha:          driver.BlendDstAlpha,
	gputypes.BlendFactorOneMinusDstAlpha:  driver.BlendOneMinusDstAlpha,
	gputypes.BlendFactorSrcAlphaSaturated: driver.BlendSrcAlphaSaturate,
	gputypes.BlendFactorConstant:          driver.BlendConstantColor,
	gputypes.BlendFactorOneMinusConstant:  driver.BlendOneMinusConstantColor,
}

func blendFactor(f gputypes.BlendFactor) driver.BlendFactor {
	if v, ok := blendFactors[f]; ok {
		return v
	}
	return driver.BlendOne
}

func blendEquation(op gputypes.BlendOperation) driver.BlendEquation {
	switch op {
	case gputypes.BlendOperationSubtract:
		return driver.EquationSubtract
	case gputypes.BlendOperationReverseSubtract:
		return driver.EquationReverseSubtract
	case gputypes.BlendOperationMin:
		return driver.EquationMin
	case gputypes.BlendOperationMax:
		return driver.EquationMax
	default:
		return driver.EquationAdd
	}
}

func colorMask(m gputypes.ColorWriteMask) [4]bool {
	return [4]bool{
		m&gputypes.ColorWriteMaskRed != 0,
		m&gputypes.ColorWriteMaskGreen != 0,
		m&gputypes.ColorWriteMaskBlue != 0,
		m&gputypes.ColorWriteMaskAlpha != 0,
	}
}
