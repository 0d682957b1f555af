package mem

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/openfluke/webgpu/wgpu"
)

// deviceContext holds the single WebGPU context backing the device memory
// space, adapted from the teacher's GPU context singleton: same
// sync.Once-guarded lazy init and adapter-selection fallback chain
// (NVIDIA preference, then high-performance, then low-power, then
// whatever the platform offers), repurposed here to back chunk storage
// instead of neural-network weight buffers.
type deviceContext struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
}

var (
	devCtx     deviceContext
	devOnce    sync.Once
	devInitErr error
)

func getDeviceContext() (*deviceContext, error) {
	devOnce.Do(func() {
		devCtx.instance = wgpu.CreateInstance(nil)
		if devCtx.instance == nil {
			devInitErr = fmt.Errorf("mem: failed to create WebGPU instance")
			return
		}

		for _, a := range devCtx.instance.EnumerateAdapters(nil) {
			info := a.GetInfo()
			if strings.Contains(strings.ToLower(info.Name), "nvidia") ||
				strings.Contains(strings.ToLower(info.VendorName), "nvidia") {
				devCtx.adapter = a
				break
			}
		}

		tryInit := func(opts *wgpu.RequestAdapterOptions) error {
			if devCtx.adapter != nil {
				return nil
			}
			var err error
			devCtx.adapter, err = devCtx.instance.RequestAdapter(opts)
			return err
		}

		if devCtx.adapter == nil {
			devInitErr = tryInit(&wgpu.RequestAdapterOptions{PowerPreference: wgpu.PowerPreferenceHighPerformance})
		}
		if devCtx.adapter == nil {
			devInitErr = tryInit(&wgpu.RequestAdapterOptions{PowerPreference: wgpu.PowerPreferenceLowPower})
		}
		if devCtx.adapter == nil {
			devInitErr = tryInit(nil)
		}
		if devCtx.adapter == nil {
			devInitErr = fmt.Errorf("mem: no WebGPU adapter available: %w", devInitErr)
			return
		}

		var err error
		devCtx.device, err = devCtx.adapter.RequestDevice(nil)
		if err != nil {
			devInitErr = fmt.Errorf("mem: RequestDevice failed: %w", err)
			return
		}
		devCtx.queue = devCtx.device.GetQueue()
	})
	if devInitErr != nil {
		return nil, devInitErr
	}
	return &devCtx, nil
}

// deviceAlloc is the device-resident half of a Token: a WebGPU storage
// buffer sized for elems float32 lanes (matching the original buffer
// helpers' float32 convention), plus the context it was created against.
type deviceAlloc struct {
	buf   *wgpu.Buffer
	elems int64
	ctx   *deviceContext
}

// deviceSpace is the GPU-backed memory space. Reserve can genuinely fail —
// unlike HostSpace, a real buffer allocation request is issued to the
// WebGPU device and its error surfaces as OutOfMemory.
type deviceSpace struct{}

// Device returns the device memory space. On a machine with no usable
// WebGPU adapter, Reserve reports OutOfMemory rather than panicking — an
// unreachable GPU is a recoverable allocation failure, not a programming
// error (spec §7).
func Device() Space { return deviceSpace{} }

func (deviceSpace) Name() string { return "device" }

func (deviceSpace) AccessibleFrom(execName string) bool {
	return execName == "device"
}

func (deviceSpace) Reserve(elems int64) (Token, error) {
	ctx, err := getDeviceContext()
	if err != nil {
		return Token{}, &OutOfMemory{Space: "device", Elems: elems}
	}
	buf, err := ctx.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "ddc.chunk",
		Size:  uint64(elems) * 4,
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst | wgpu.BufferUsageCopySrc,
	})
	if err != nil || buf == nil {
		return Token{}, &OutOfMemory{Space: "device", Elems: elems}
	}
	return Token{
		spaceName: "device",
		elems:     elems,
		device:    &deviceAlloc{buf: buf, elems: elems, ctx: ctx},
	}, nil
}

func (deviceSpace) Release(tok Token) {
	if tok.device != nil && tok.device.buf != nil {
		tok.device.buf.Destroy()
	}
}

// Upload stages host float32 data into tok's device buffer. tok must have
// been reserved from Device().
func Upload(tok Token, data []float32) error {
	if tok.device == nil {
		return fmt.Errorf("mem.Upload: token was not reserved from the device space")
	}
	ctx := tok.device.ctx
	ctx.queue.WriteBuffer(tok.device.buf, 0, wgpu.ToBytes(data))
	return nil
}

// Download reads tok's device buffer back into a host float32 slice,
// staging through a mapped read-back buffer. This is the mirror-creation
// primitive spec §4.4 requires for a cross-memory-space deep-copy.
func Download(tok Token) ([]float32, error) {
	if tok.device == nil {
		return nil, fmt.Errorf("mem.Download: token was not reserved from the device space")
	}
	ctx := tok.device.ctx
	sizeBytes := uint64(tok.device.elems) * 4

	staging, err := ctx.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "ddc.mirror.staging",
		Size:  sizeBytes,
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("mem.Download: staging buffer: %w", err)
	}
	defer staging.Destroy()

	encoder, err := ctx.device.CreateCommandEncoder(nil)
	if err != nil {
		return nil, fmt.Errorf("mem.Download: command encoder: %w", err)
	}
	encoder.CopyBufferToBuffer(tok.device.buf, 0, staging, 0, sizeBytes)
	cmd, err := encoder.Finish(nil)
	if err != nil {
		return nil, fmt.Errorf("mem.Download: encoder finish: %w", err)
	}
	ctx.queue.Submit(cmd)

	done := make(chan struct{})
	var mapErr error
	err = staging.MapAsync(wgpu.MapModeRead, 0, sizeBytes, func(status wgpu.BufferMapAsyncStatus) {
		if status != wgpu.BufferMapAsyncStatusSuccess {
			mapErr = fmt.Errorf("mem.Download: map status %v", status)
		}
		close(done)
	})
	if err != nil {
		return nil, fmt.Errorf("mem.Download: MapAsync: %w", err)
	}

	timeout := time.After(2 * time.Second)
loop:
	for {
		ctx.device.Poll(false, nil)
		select {
		case <-done:
			break loop
		case <-timeout:
			return nil, fmt.Errorf("mem.Download: timed out waiting for map")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	if mapErr != nil {
		return nil, mapErr
	}

	view := staging.GetMappedRange(0, uint(sizeBytes))
	if view == nil {
		return nil, fmt.Errorf("mem.Download: GetMappedRange returned nil")
	}
	out := make([]float32, tok.device.elems)
	copy(out, wgpu.FromBytes[float32](view))
	staging.Unmap()
	return out, nil
}

// Fence blocks until all work previously submitted to the device's queue
// has completed — the join point spec §5 requires before a dependent
// cross-space deep-copy.
func Fence() {
	ctx, err := getDeviceContext()
	if err != nil {
		return
	}
	ctx.device.Poll(true, nil)
}
