package replay

import (
	"archive/zip"
	"bufio"
	"errors"
	"io"

	"github.com/basselfa/pedsim-ros/common/utils"
)

type rawRecordHandles struct {
	recordMetadata io.ReadCloser
	record         io.ReadCloser
	zip            *zip.ReadCloser
}

type ReplayMessage struct {
	Line string
	UUID string
}

// Replayer streams the frames of a record archive, one JSON line at a time.
type Replayer struct {
	UUID             string
	filename         string
	streamingChannel chan *ReplayMessage
	rawRecordHandles rawRecordHandles
}

func NewReplayer(filename string, UUID string) (*Replayer, error) {
	rawRecordHandles, err := unzip(filename)
	if err != nil {
		return nil, err
	}

	return &Replayer{
		streamingChannel: make(chan *ReplayMessage),
		UUID:             UUID,
		filename:         filename,
		rawRecordHandles: *rawRecordHandles,
	}, nil
}

// ReadMetadata returns the serialized RecordMetadata stored in the archive.
func (r *Replayer) ReadMetadata() (string, error) {
	defer r.rawRecordHandles.recordMetadata.Close()

	metadata, err := io.ReadAll(r.rawRecordHandles.recordMetadata)
	if err != nil {
		return "", err
	}

	return string(metadata), nil
}

// Read streams record frames; a nil message marks the end of the record.
func (r *Replayer) Read() chan *ReplayMessage {
	reader := bufio.NewReader(r.rawRecordHandles.record)

	go func() {
		for {
			line, isPrefix, readErr := reader.ReadLine()

			if readErr == io.EOF {
				r.rawRecordHandles.zip.Close()
				r.rawRecordHandles.record.Close()
				r.streamingChannel <- nil
				return
			}

			if len(line) == 0 {
				continue
			}

			if !isPrefix {
				r.streamingChannel <- &ReplayMessage{
					Line: string(line),
					UUID: r.UUID,
				}
			} else {
				buf := append([]byte(nil), line...)

				for isPrefix && readErr == nil {
					line, isPrefix, readErr = reader.ReadLine()
					buf = append(buf, line...)
				}

				r.streamingChannel <- &ReplayMessage{
					Line: string(buf),
					UUID: r.UUID,
				}
			}
		}
	}()

	return r.streamingChannel
}

func (r *Replayer) Stop() {
	utils.Debug("replayer", "stop replayer")
}

func unzip(filename string) (*rawRecordHandles, error) {
	rawRecordHandles := &rawRecordHandles{}

	reader, err := zip.OpenReader(filename)

	if err != nil {
		return nil, errors.New("could not open zip file (" + err.Error() + ")")
	}

	rawRecordHandles.zip = reader

	for _, file := range reader.File {
		fd, err := file.Open()

		if err != nil {
			return nil, err
		}

		if file.Name == "Record" {
			rawRecordHandles.record = fd
		} else if file.Name == "RecordMetadata" {
			rawRecordHandles.recordMetadata = fd
		}
	}

	if rawRecordHandles.record == nil || rawRecordHandles.recordMetadata == nil {
		reader.Close()
		return nil, errors.New("record archive is missing Record or RecordMetadata")
	}

	return rawRecordHandles, nil
}
