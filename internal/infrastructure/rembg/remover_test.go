package rembg

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"net/http"
	"testing"

	"github.com/andreyxaxa/Background-Remover/pkg/imagecodec"
	"github.com/franela/goblin"
)

type httpResponseBody struct {
	io.Reader
}

func (body *httpResponseBody) Close() error {
	return nil
}

func testReqFunc(statusCode int, response []byte, callError error, requestAssert func(req *http.Request)) httpRequestFunc {
	return func(req *http.Request) (*http.Response, error) {
		requestAssert(req)

		if callError != nil {
			return nil, callError
		}

		return &http.Response{
			StatusCode: statusCode,
			Body:       &httpResponseBody{bytes.NewReader(response)},
			Header: http.Header{
				"Content-Type": []string{"image/png"},
			},
		}, nil
	}
}

func noAssertions(req *http.Request) {}

func testImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	return img
}

func transparentPNG() []byte {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 1, color.NRGBA{R: 0xff, A: 0xff})

	data, _ := imagecodec.EncodePNG(img)

	return data
}

func TestRembgRemover(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("Remover", func() {
		g.It("Should upload the image as multipart png", func() {
			r := New("http://rembg:7000/api/remove", 0)
			r.makeRequest = testReqFunc(http.StatusOK, transparentPNG(), nil, func(req *http.Request) {
				g.Assert(req.Method).Equal(http.MethodPost)
				g.Assert(req.URL.String()).Equal("http://rembg:7000/api/remove")

				err := req.ParseMultipartForm(1 << 20)
				g.Assert(err).IsNil()

				file, header, err := req.FormFile("file")
				g.Assert(err).IsNil()
				g.Assert(header.Filename).Equal("image.png")

				data, _ := io.ReadAll(file)
				img, err := imagecodec.Decode(data)
				g.Assert(err).IsNil()
				g.Assert(img.Bounds().Dx()).Equal(4)
			})

			out, err := r.RemoveBackground(context.Background(), testImage())

			g.Assert(err).IsNil()
			_, _, _, a := out.At(0, 0).RGBA()
			g.Assert(a).Equal(uint32(0))
			_, _, _, a = out.At(1, 1).RGBA()
			g.Assert(a).Equal(uint32(0xffff))
		})

		g.It("Should return error when the server responds with non 200 status", func() {
			r := New("http://rembg/api/remove", 0)
			r.makeRequest = testReqFunc(http.StatusInternalServerError, nil, nil, noAssertions)

			_, err := r.RemoveBackground(context.Background(), testImage())
			g.Assert(errors.Is(err, ErrResponseStatusNotOK)).IsTrue()
		})

		g.It("Should return error when the request fails", func() {
			callErr := errors.New("connection refused")
			r := New("http://rembg/api/remove", 0)
			r.makeRequest = testReqFunc(0, nil, callErr, noAssertions)

			_, err := r.RemoveBackground(context.Background(), testImage())
			g.Assert(errors.Is(err, callErr)).IsTrue()
		})

		g.It("Should return error when the response is not an image", func() {
			r := New("http://rembg/api/remove", 0)
			r.makeRequest = testReqFunc(http.StatusOK, []byte("<html>oops</html>"), nil, noAssertions)

			_, err := r.RemoveBackground(context.Background(), testImage())
			g.Assert(err == nil).IsFalse()
		})

		g.It("Should be named rembg", func() {
			g.Assert(New("http://rembg", 0).Name()).Equal("rembg")
		})
	})
}
