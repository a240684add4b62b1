// glkit-view renders a spinning cube with the Phong or Flat shader, either
// in a window or offscreen into a video file.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math"
	"os"
	"runtime"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/shadeforge/glkit/capture"
	"github.com/shadeforge/glkit/glcontext"
	"github.com/shadeforge/glkit/shaders/flat"
	"github.com/shadeforge/glkit/shaders/phong"
	"github.com/shadeforge/glkit/texture"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	var width = flag.Int("width", 800, "Width of the output")
	var height = flag.Int("height", 600, "Height of the output")
	var lights = flag.Int("lights", 2, "Number of Phong lights (0 for ambient only)")
	var texturePath = flag.String("texture", "", "Image file to texture the cube with")
	var alphaMask = flag.Float64("alphamask", -1, "Discard fragments below this alpha (negative to disable)")
	var useFlat = flag.Bool("flat", false, "Use the unlit Flat shader instead of Phong")

	var record = flag.String("record", "", "Record to this video file instead of opening a window")
	var duration = flag.Float64("duration", 5.0, "Duration to record in seconds")
	var fps = flag.Int("fps", 30, "Frames per second for recording")

	flag.Parse()

	if err := glcontext.Init(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glcontext.Terminate()

	recording := *record != ""
	ctx, err := glcontext.New(*width, *height, "glkit viewer", !recording)
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	defer ctx.Shutdown()
	ctx.MakeCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalf("Failed to load GL entry points: %v", err)
	}
	log.Printf("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	var tex *texture.Texture2D
	if *texturePath != "" {
		tex, err = loadTexture(*texturePath)
		if err != nil {
			log.Fatalf("Failed to load texture: %v", err)
		}
		defer tex.Release()
	}

	scene, err := newScene(*lights, tex, float32(*alphaMask), *useFlat)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}
	defer scene.release()

	gl.Enable(gl.DEPTH_TEST)

	if recording {
		if err := runRecord(scene, *record, *width, *height, *duration, *fps); err != nil {
			log.Fatalf("Recording failed: %v", err)
		}
		log.Printf("Recorded %s", *record)
		return
	}

	for !ctx.ShouldClose() {
		w, h := ctx.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		scene.drawFrame(ctx.Time(), float32(w)/float32(h))
		ctx.EndFrame()
	}
}

func runRecord(s *scene, path string, width, height int, duration float64, fps int) error {
	fb, err := capture.New(width, height)
	if err != nil {
		return err
	}
	defer fb.Release()

	rec, err := capture.NewRecorder(path, width, height, fps)
	if err != nil {
		return err
	}

	totalFrames := int(duration * float64(fps))
	aspect := float32(width) / float32(height)
	for i := 0; i < totalFrames; i++ {
		fb.Bind()
		s.drawFrame(float64(i)/float64(fps), aspect)
		fb.Unbind()

		if err := rec.WriteFrame(fb.ReadRGBA()); err != nil {
			rec.Close()
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return rec.Close()
}

func loadTexture(path string) (*texture.Texture2D, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return texture.New(img, texture.Options{Filter: texture.Mipmap, VFlip: true})
}

// scene holds the cube mesh and whichever shader variant the flags selected.
type scene struct {
	vao, vbo uint32
	tex      *texture.Texture2D

	phongShader *phong.Phong
	flatShader  *flat.Flat
}

func newScene(lights int, tex *texture.Texture2D, alphaMask float32, useFlat bool) (*scene, error) {
	s := &scene{tex: tex}
	s.vao, s.vbo = newCubeMesh()

	if useFlat {
		var flags flat.Flags
		if tex != nil {
			flags |= flat.Textured
		}
		if alphaMask >= 0 {
			flags |= flat.AlphaMask
		}
		shader, err := flat.New(flags)
		if err != nil {
			return nil, err
		}
		shader.SetColor(mgl32.Vec4{0.3, 0.6, 1, 1})
		if alphaMask >= 0 {
			shader.SetAlphaMask(alphaMask)
		}
		s.flatShader = shader
		return s, nil
	}

	var flags phong.Flags
	if tex != nil {
		flags |= phong.DiffuseTexture
	}
	if alphaMask >= 0 {
		flags |= phong.AlphaMask
	}
	shader, err := phong.New(flags, lights)
	if err != nil {
		return nil, err
	}
	shader.SetAmbientColor(mgl32.Vec4{0.05, 0.05, 0.1, 1}).
		SetDiffuseColor(mgl32.Vec4{0.3, 0.6, 1, 1}).
		SetSpecularColor(mgl32.Vec4{1, 1, 1, 0}).
		SetShininess(120)
	if alphaMask >= 0 {
		shader.SetAlphaMask(alphaMask)
	}
	s.phongShader = shader
	return s, nil
}

func (s *scene) drawFrame(t float64, aspect float32) {
	gl.ClearColor(0.08, 0.08, 0.1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	model := mgl32.HomogRotate3D(float32(t), mgl32.Vec3{0.5, 1, 0}.Normalize())
	view := mgl32.Translate3D(0, 0, -3)
	modelview := view.Mul4(model)
	projection := mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 100)

	if s.flatShader != nil {
		s.flatShader.SetTransformationProjectionMatrix(projection.Mul4(modelview))
		if s.tex != nil {
			s.flatShader.BindTexture(s.tex)
		}
		s.flatShader.Use()
	} else {
		p := s.phongShader
		p.SetTransformationMatrix(modelview).
			SetProjectionMatrix(projection).
			SetNormalMatrix(modelview.Mat3().Inv().Transpose())

		// Orbit the lights around the cube.
		for i := 0; i < p.LightCount(); i++ {
			angle := t + float64(i)*2*math.Pi/float64(p.LightCount())
			p.SetLightPosition(i, mgl32.Vec3{
				3 * float32(math.Cos(angle)),
				2,
				3 * float32(math.Sin(angle)),
			})
		}
		if s.tex != nil {
			p.BindDiffuseTexture(s.tex)
		}
		p.Use()
	}

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, cubeVertexCount)
	gl.BindVertexArray(0)
}

func (s *scene) release() {
	if s.phongShader != nil {
		s.phongShader.Release()
	}
	if s.flatShader != nil {
		s.flatShader.Release()
	}
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteVertexArrays(1, &s.vao)
}
