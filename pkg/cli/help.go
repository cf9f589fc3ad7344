/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cli

import (
	"fmt"
	"io"
)

// ShowHelp prints prtgcli usage.
func ShowHelp(w io.Writer) {
	_, _ = fmt.Fprint(w, `PRTG command line interface

Usage:
  prtgcli [-l level] <command> [options]

Commands:
  ls        list objects, one result line each
  table     list objects as a table
  status    show the server status
  tag       set tags on the parent devices of matching sensors

Options for ls and table:
  -c, -content string        object type: sensors or devices (default "devices")
  -f, -filter-string string  object filter, e.g. tags=switch,status=up
                             a comma only starts a new pair before key=, so tags=a,b keeps "a,b"
  -s, -sort-by string        sort by a column (default "objid")
  -p, -parents               ls only: list the parent devices of matching sensors

Options for tag:
  -tags string               select sensors by tag
  -objid int                 select sensors by objid
  -n, -new-tags string       space separated tags to set on each parent device

Environment:
  PRTGENDPOINT, PRTGUSERNAME, PRTGPASSWORD  connection settings (required)
  PRTG_PAGE_SIZE             records per page (default 500)
  PRTG_TIMEOUT               request timeout (default 30s)
  PRTG_RATE_LIMIT            requests per second, 0 for unlimited
  PRTG_INSECURE_SKIP_VERIFY  skip TLS certificate verification
  PRTGCLI_CONFIG             JSON file of fallback values for the variables above
  LOG_LEVEL, LOG_OUTPUT      logging (logs go to stderr)

Examples:
  # List ping sensors, sorted by name
  prtgcli ls -c sensors -f tags=pingsensor -s name

  # Show the devices that own ping sensors
  prtgcli ls -c sensors -f tags=pingsensor -p

  # Tag every parent of a sensor selection
  prtgcli tag -tags pingsensor -new-tags "core switch"
`)
}

// ShowTaggerHelp prints prtg-tagger usage.
func ShowTaggerHelp(w io.Writer) {
	_, _ = fmt.Fprint(w, `PRTG bulk tagger

Usage:
  prtg-tagger [connection] (--sensor | --device | --tag-sensor-parents) [selection]

Connection (each overrides its environment variable):
  --endpoint string    PRTG API endpoint (PRTGENDPOINT)
  --username string    PRTG username (PRTGUSERNAME)
  --password string    PRTG password (PRTGPASSWORD)

Actions:
  --sensor             search for sensor objects
  --device             search for device objects
  --tag-sensor-parents look up sensors, then tag all their parents with --new_tags

Selection:
  --tags string        search by a tag string
  --objid int          search by an objid
  --new_tags string    space separated tags to set on each parent device

Every update is previewed and must be confirmed with an exact "Y".
Declining stops the run with exit status 2; updates already applied stay.
`)
}
